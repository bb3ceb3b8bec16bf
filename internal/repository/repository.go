package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/lib/pq"
)

// Repository reads group loan snapshots from Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FindGroup retrieves a group with its memberships
func (r *Repository) FindGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{ID: groupID}
	query := `
		SELECT name
		FROM coop.groups
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, groupID).Scan(&group.Name)
	if err == sql.ErrNoRows {
		return nil, models.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	members, err := r.listMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	group.Memberships = members
	return group, nil
}

// listMembers returns memberships in join order, which is the order the
// group directory presents them in
func (r *Repository) listMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	query := `
		SELECT m.user_id, u.name, m.total_contributed, m.last_contribution, m.joined_at
		FROM coop.memberships m
		JOIN coop.users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.joined_at, m.user_id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []models.GroupMember{}
	for rows.Next() {
		var (
			m    models.GroupMember
			last pq.NullTime
		)
		if err := rows.Scan(&m.UserID, &m.Name, &m.TotalContributed, &last, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.LastContribution = timePtr(last)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// ListLoansByGroup returns all loans of a group, oldest first
func (r *Repository) ListLoansByGroup(ctx context.Context, groupID string) ([]models.LoanRecord, error) {
	query := `
		SELECT id, amount, status, COALESCE(purpose, ''), created_at, updated_at, repayment_date
		FROM coop.loans
		WHERE group_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := []models.LoanRecord{}
	for rows.Next() {
		var (
			loan models.LoanRecord
			due  pq.NullTime
		)
		if err := rows.Scan(&loan.ID, &loan.Amount, &loan.Status, &loan.Purpose, &loan.CreatedAt, &loan.UpdatedAt, &due); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loan.RepaymentDate = timePtr(due)
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

func timePtr(t pq.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
