package analytics

import (
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func loan(id string, amount int64, status models.LoanStatus, purpose string, created time.Time) models.LoanRecord {
	return models.LoanRecord{
		ID:        id,
		Amount:    decimal.NewFromInt(amount),
		Status:    status,
		Purpose:   purpose,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// scenarioLoans is the three-loan portfolio used across the package tests
func scenarioLoans() []models.LoanRecord {
	created := date(2025, time.May, 10)
	return []models.LoanRecord{
		loan("l1", 1000, models.StatusDisbursed, "business expansion", created),
		loan("l2", 500, models.StatusRepaid, "medical bills", created),
		loan("l3", 2000, models.StatusDefaulted, "home renovation", created),
	}
}
