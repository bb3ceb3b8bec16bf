package analytics

import (
	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

// Risk levels derived from a category's success rate
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

const topContributorLimit = 2

type purposeTally struct {
	tally
	success int
}

// AggregateByPurpose classifies every loan and summarizes each non-empty
// category, enriched with metadata from catalog.
func AggregateByPurpose(loans []models.LoanRecord, members []models.GroupMember, catalog Catalog) []models.PurposeCategory {
	perCategory := make(map[models.CategoryID]*purposeTally, len(CategoryOrder))
	for _, loan := range loans {
		id := Classify(loan.Purpose)
		t, ok := perCategory[id]
		if !ok {
			t = &purposeTally{}
			perCategory[id] = t
		}
		t.add(loan.Amount)
		if loan.Status == models.StatusRepaid {
			t.success++
		}
	}

	// Not category specific: every category lists the same leading members.
	contributors := topContributors(members)

	categories := make([]models.PurposeCategory, 0, len(perCategory))
	for _, id := range CategoryOrder {
		t, ok := perCategory[id]
		if !ok || t.count == 0 {
			continue
		}
		info := catalog.lookup(id)
		rate := percent(t.success, t.count)
		categories = append(categories, models.PurposeCategory{
			ID:              id,
			Name:            info.Name,
			Icon:            info.Icon,
			Count:           t.count,
			TotalAmount:     t.total,
			AvgAmount:       average(t.total, t.count),
			SuccessCount:    t.success,
			SuccessRate:     rate,
			RiskLevel:       RiskLevel(rate),
			InterestRate:    info.InterestRate,
			Term:            info.Term,
			PopularIn:       append([]string{}, info.PopularIn...),
			TopContributors: append([]string{}, contributors...),
		})
	}
	return categories
}

// RiskLevel rates a success percentage: Low above 90, Medium above 80, High otherwise
func RiskLevel(successRate int) string {
	switch {
	case successRate > 90:
		return RiskLow
	case successRate > 80:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func topContributors(members []models.GroupMember) []string {
	names := make([]string, 0, topContributorLimit)
	for _, m := range members {
		if len(names) == topContributorLimit {
			break
		}
		names = append(names, m.Name)
	}
	return names
}
