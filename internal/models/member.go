package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupMember represents a cooperative member inside a group snapshot
type GroupMember struct {
	UserID           string          `json:"userId"`
	Name             string          `json:"name"`
	TotalContributed decimal.Decimal `json:"totalContributed"`
	LastContribution *time.Time      `json:"lastContribution,omitempty"`
	JoinedAt         time.Time       `json:"joinedAt"`
}

// Group represents a savings group with its memberships
type Group struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Memberships []GroupMember `json:"memberships"`
}

// Snapshot is the immutable input of a single analysis pass
type Snapshot struct {
	GroupID string
	Loans   []LoanRecord
	Members []GroupMember
}
