package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

// JSONSnapshotRepository reads snapshots from the JSON documents returned by
// the loans and groups endpoints, saved to disk.
type JSONSnapshotRepository struct {
	loansPath  string
	groupsPath string
}

// NewJSONSnapshotRepository creates a repository over the two files
func NewJSONSnapshotRepository(loansPath, groupsPath string) *JSONSnapshotRepository {
	return &JSONSnapshotRepository{loansPath: loansPath, groupsPath: groupsPath}
}

// loanDocument is a loan as exported, optionally tagged with its group
type loanDocument struct {
	models.LoanRecord
	GroupID string `json:"groupId"`
}

// FindGroup returns the group with the given id from the groups file
func (r *JSONSnapshotRepository) FindGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var groups []models.Group
	if err := readJSON(ctx, r.groupsPath, &groups); err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			if groups[i].Memberships == nil {
				groups[i].Memberships = []models.GroupMember{}
			}
			return &groups[i], nil
		}
	}
	return nil, models.ErrGroupNotFound
}

// ListLoansByGroup returns the loans of the file. Loans carrying a groupId
// are filtered by it; untagged loans are assumed to be scoped already.
func (r *JSONSnapshotRepository) ListLoansByGroup(ctx context.Context, groupID string) ([]models.LoanRecord, error) {
	var docs []loanDocument
	if err := readJSON(ctx, r.loansPath, &docs); err != nil {
		return nil, err
	}
	loans := make([]models.LoanRecord, 0, len(docs))
	for _, d := range docs {
		if d.GroupID != "" && d.GroupID != groupID {
			continue
		}
		loans = append(loans, d.LoanRecord)
	}
	return loans, nil
}

func readJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
