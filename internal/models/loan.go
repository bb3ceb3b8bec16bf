package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan
type LoanStatus string

const (
	StatusPending   LoanStatus = "PENDING"
	StatusApproved  LoanStatus = "APPROVED"
	StatusRejected  LoanStatus = "REJECTED"
	StatusDisbursed LoanStatus = "DISBURSED"
	StatusRepaying  LoanStatus = "REPAYING"
	StatusRepaid    LoanStatus = "REPAID"
	StatusDefaulted LoanStatus = "DEFAULTED"
)

// AllStatuses lists every known status in lifecycle order
var AllStatuses = []LoanStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusDisbursed,
	StatusRepaying,
	StatusRepaid,
	StatusDefaulted,
}

// Valid reports whether s is one of the known statuses
func (s LoanStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// LoanRecord represents a loan as returned by the group loans endpoint
type LoanRecord struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        LoanStatus      `json:"status"`
	Purpose       string          `json:"purpose"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	RepaymentDate *time.Time      `json:"repaymentDate,omitempty"` // Set once a schedule exists
}
