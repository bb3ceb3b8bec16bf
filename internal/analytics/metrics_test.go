package analytics

import (
	"testing"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_Scenario(t *testing.T) {
	m := ComputeMetrics(AggregateByStatus(scenarioLoans()), 3)

	require.NotNil(t, m)
	assert.Equal(t, 33, m.CompletionRate)
	assert.Equal(t, 33, m.DefaultRate)
	assert.Equal(t, 33, m.ActivePct)
	assert.Equal(t, 0, m.PendingPct)
	assert.Equal(t, RatingConcerning, m.CompletionRating)
	assert.Equal(t, "above", m.DefaultVsIndustry)
	require.Len(t, m.Insights, 2)
	assert.Equal(t, "Default rate of 33% is 21 points above the 12% industry average.", m.Insights[0])
	assert.Equal(t, "Completion rate of 33% is below the 85% target and is rated concerning.", m.Insights[1])
}

func TestComputeMetrics_Empty(t *testing.T) {
	assert.Nil(t, ComputeMetrics(nil, 0))
	assert.Nil(t, ComputeMetrics([]models.StatusBucket{}, 0))
}

func TestComputeMetrics_Healthy(t *testing.T) {
	now := date(2025, time.May, 1)
	var loans []models.LoanRecord
	for i := 0; i < 20; i++ {
		status := models.StatusRepaid
		if i == 0 {
			status = models.StatusDefaulted
		}
		loans = append(loans, loan(string(rune('a'+i)), 100, status, "", now))
	}

	m := ComputeMetrics(AggregateByStatus(loans), len(loans))

	require.NotNil(t, m)
	assert.Equal(t, 95, m.CompletionRate)
	assert.Equal(t, 5, m.DefaultRate)
	assert.Equal(t, RatingExcellent, m.CompletionRating)
	assert.Equal(t, "below", m.DefaultVsIndustry)
	assert.Contains(t, m.Insights[0], "7 points below")
	assert.Contains(t, m.Insights[1], "meets the 85% target")
}

func TestComputeMetrics_RateBounds(t *testing.T) {
	now := date(2025, time.May, 1)
	for n := 1; n <= 15; n++ {
		var loans []models.LoanRecord
		for i := 0; i < n; i++ {
			loans = append(loans, loan(string(rune('a'+i)), 10, models.AllStatuses[(i*3)%len(models.AllStatuses)], "", now))
		}
		m := ComputeMetrics(AggregateByStatus(loans), n)
		require.NotNil(t, m)
		for _, v := range []int{m.CompletionRate, m.DefaultRate, m.ActivePct, m.PendingPct} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, RatingExcellent, Rate(90))
	assert.Equal(t, RatingGood, Rate(89))
	assert.Equal(t, RatingGood, Rate(80))
	assert.Equal(t, RatingConcerning, Rate(79))
}

func TestRepaymentPerformance(t *testing.T) {
	due := date(2025, time.June, 1)
	onTime := loan("a", 100, models.StatusRepaid, "", date(2025, time.January, 1))
	onTime.UpdatedAt = date(2025, time.May, 1)
	onTime.RepaymentDate = &due
	lateRepaid := loan("b", 100, models.StatusRepaid, "", date(2025, time.January, 1))
	lateRepaid.UpdatedAt = date(2025, time.July, 1)
	lateRepaid.RepaymentDate = &due

	perf := RepaymentPerformance([]models.LoanRecord{
		onTime,
		lateRepaid,
		loan("c", 100, models.StatusRepaying, "", due),
		loan("d", 100, models.StatusDefaulted, "", due),
	})

	require.NotNil(t, perf)
	assert.Equal(t, 2, perf.OnTime)
	assert.Equal(t, 1, perf.Late)
	assert.Equal(t, 67, perf.OnTimePct)
	assert.Equal(t, RatingConcerning, perf.Rating)

	assert.Nil(t, RepaymentPerformance([]models.LoanRecord{loan("e", 1, models.StatusPending, "", due)}))
}
