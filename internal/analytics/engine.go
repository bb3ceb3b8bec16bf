package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// Options configures an Engine
type Options struct {
	Trend   TrendOptions
	Catalog Catalog // nil uses DefaultCatalog
}

// Engine runs the portfolio analysis. It holds configuration only and is safe
// for concurrent use.
type Engine struct {
	trend   TrendOptions
	catalog Catalog
}

// NewEngine initializes an engine
func NewEngine(opts Options) *Engine {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{trend: opts.Trend, catalog: catalog}
}

// Analyze validates the snapshot and derives the full portfolio view as of now.
// benchmark may be nil.
func (e *Engine) Analyze(snapshot models.Snapshot, now time.Time, benchmark *models.MarketBenchmark) (*models.AnalysisResult, error) {
	if err := Validate(snapshot); err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}

	loans := snapshot.Loans
	result := &models.AnalysisResult{
		GroupID:             snapshot.GroupID,
		GeneratedAt:         now,
		Empty:               len(loans) == 0,
		TotalLoans:          len(loans),
		TotalPrincipal:      totalPrincipal(loans),
		StatusBuckets:       AggregateByStatus(loans),
		PurposeCategories:   AggregateByPurpose(loans, snapshot.Members, e.catalog),
		Trends:              BuildTrends(loans, now, e.trend),
		AverageContribution: AverageContribution(snapshot.Members),
		Benchmark:           benchmark,
	}
	result.Metrics = ComputeMetrics(result.StatusBuckets, len(loans))
	result.RepaymentPerformance = RepaymentPerformance(loans)

	if result.Metrics != nil {
		if perf := result.RepaymentPerformance; perf != nil {
			result.Metrics.Insights = append(result.Metrics.Insights, fmt.Sprintf(
				"%d%% of repayments are on time, rated %s.", perf.OnTimePct, perf.Rating))
		}
		if benchmark != nil {
			if insight := applyBenchmark(result.PurposeCategories, benchmark.KeyRate); insight != "" {
				result.Metrics.Insights = append(result.Metrics.Insights, insight)
			}
		}
	}
	return result, nil
}

// AverageContribution is the mean total contribution per member, 0 without members
func AverageContribution(members []models.GroupMember) decimal.Decimal {
	if len(members) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, m := range members {
		total = total.Add(m.TotalContributed)
	}
	return average(total, len(members))
}

func totalPrincipal(loans []models.LoanRecord) decimal.Decimal {
	total := decimal.Zero
	for _, loan := range loans {
		total = total.Add(loan.Amount)
	}
	return total
}

// applyBenchmark sets the rate spread of every category and describes the
// categories priced under the key rate.
func applyBenchmark(categories []models.PurposeCategory, keyRate float64) string {
	var below []string
	for i := range categories {
		spread := categories[i].InterestRate - keyRate
		categories[i].RateSpread = &spread
		if spread < 0 {
			below = append(below, categories[i].Name)
		}
	}
	if len(below) == 0 {
		return ""
	}
	return fmt.Sprintf("Priced below the %.2f%% key rate: %s.", keyRate, strings.Join(below, ", "))
}
