package analytics

import (
	"fmt"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

// Validate checks the snapshot shape before analysis. It returns the first
// problem found as a *models.ValidationError.
func Validate(snapshot models.Snapshot) error {
	for i, loan := range snapshot.Loans {
		if err := validateLoan(i, loan); err != nil {
			return err
		}
	}
	for i, m := range snapshot.Members {
		if m.UserID == "" {
			return &models.ValidationError{Kind: "member", Index: i, Field: "userId", Reason: "is required"}
		}
		if m.TotalContributed.IsNegative() {
			return &models.ValidationError{Kind: "member", Index: i, Field: "totalContributed", Reason: "must not be negative"}
		}
	}
	return nil
}

func validateLoan(i int, loan models.LoanRecord) error {
	invalid := func(field, reason string) error {
		return &models.ValidationError{Kind: "loan", Index: i, Field: field, Reason: reason}
	}
	switch {
	case loan.ID == "":
		return invalid("id", "is required")
	case !loan.Amount.IsPositive():
		return invalid("amount", "must be positive")
	case loan.Status == "":
		return invalid("status", "is required")
	case !loan.Status.Valid():
		return invalid("status", fmt.Sprintf("has unknown value %q", loan.Status))
	case loan.CreatedAt.IsZero():
		return invalid("createdAt", "is required")
	}
	return nil
}
