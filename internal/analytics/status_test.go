package analytics

import (
	"testing"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByStatus_Scenario(t *testing.T) {
	buckets := AggregateByStatus(scenarioLoans())

	require.Len(t, buckets, 3)
	assert.Equal(t, "Active", buckets[0].Name)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, "1000", buckets[0].TotalAmount.String())
	assert.Equal(t, "Completed", buckets[1].Name)
	assert.Equal(t, "500", buckets[1].TotalAmount.String())
	assert.Equal(t, "Defaulted", buckets[2].Name)
	assert.Equal(t, "2000", buckets[2].TotalAmount.String())
}

func TestAggregateByStatus_MergesActive(t *testing.T) {
	now := date(2025, time.March, 1)
	loans := []models.LoanRecord{
		loan("a", 100, models.StatusDisbursed, "", now),
		loan("b", 300, models.StatusRepaying, "", now),
		loan("c", 50, models.StatusPending, "", now),
	}

	buckets := AggregateByStatus(loans)

	require.Len(t, buckets, 2)
	assert.Equal(t, BucketActive, buckets[0].Key)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, "400", buckets[0].TotalAmount.String())
	assert.Equal(t, "200", buckets[0].AvgAmount.String())
	assert.ElementsMatch(t, []models.LoanStatus{models.StatusDisbursed, models.StatusRepaying}, buckets[0].RawStatuses)
	assert.Equal(t, "Pending Approval", buckets[1].Name)
}

func TestAggregateByStatus_DisplayOrder(t *testing.T) {
	now := date(2025, time.March, 1)
	var loans []models.LoanRecord
	for i, s := range []models.LoanStatus{
		models.StatusRejected, models.StatusDefaulted, models.StatusRepaid,
		models.StatusApproved, models.StatusPending, models.StatusRepaying,
	} {
		loans = append(loans, loan(string(rune('a'+i)), 10, s, "", now))
	}

	var names []string
	for _, b := range AggregateByStatus(loans) {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Active", "Pending Approval", "Approved", "Completed", "Defaulted", "Rejected"}, names)
}

func TestAggregateByStatus_Empty(t *testing.T) {
	buckets := AggregateByStatus(nil)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestAggregateByStatus_Partition(t *testing.T) {
	now := date(2025, time.March, 1)
	var loans []models.LoanRecord
	for i := 0; i < 40; i++ {
		loans = append(loans, loan(string(rune('A'+i)), int64(i+1), models.AllStatuses[i%len(models.AllStatuses)], "", now))
	}

	sum := 0
	for _, b := range AggregateByStatus(loans) {
		assert.Positive(t, b.Count)
		sum += b.Count
	}
	assert.Equal(t, len(loans), sum)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 0, percent(5, 0))
	assert.Equal(t, 100, percent(4, 4))
}
