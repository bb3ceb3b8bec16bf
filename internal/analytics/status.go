package analytics

import (
	"math"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// Bucket keys
const (
	BucketActive    = "active"
	BucketPending   = "pending"
	BucketApproved  = "approved"
	BucketCompleted = "completed"
	BucketDefaulted = "defaulted"
	BucketRejected  = "rejected"
)

type statusGroup struct {
	key      string
	name     string
	statuses []models.LoanStatus
}

// statusGroups lists buckets in display order. Every status belongs to exactly one group.
var statusGroups = []statusGroup{
	{key: BucketActive, name: "Active", statuses: []models.LoanStatus{models.StatusDisbursed, models.StatusRepaying}},
	{key: BucketPending, name: "Pending Approval", statuses: []models.LoanStatus{models.StatusPending}},
	{key: BucketApproved, name: "Approved", statuses: []models.LoanStatus{models.StatusApproved}},
	{key: BucketCompleted, name: "Completed", statuses: []models.LoanStatus{models.StatusRepaid}},
	{key: BucketDefaulted, name: "Defaulted", statuses: []models.LoanStatus{models.StatusDefaulted}},
	{key: BucketRejected, name: "Rejected", statuses: []models.LoanStatus{models.StatusRejected}},
}

type tally struct {
	count int
	total decimal.Decimal
}

func (t *tally) add(amount decimal.Decimal) {
	t.count++
	t.total = t.total.Add(amount)
}

// AggregateByStatus groups loans into status buckets. DISBURSED and REPAYING
// share the "Active" bucket; empty buckets are left out.
func AggregateByStatus(loans []models.LoanRecord) []models.StatusBucket {
	perStatus := make(map[models.LoanStatus]*tally, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		perStatus[s] = &tally{}
	}
	for _, loan := range loans {
		if t, ok := perStatus[loan.Status]; ok {
			t.add(loan.Amount)
		}
	}

	buckets := make([]models.StatusBucket, 0, len(statusGroups))
	for _, g := range statusGroups {
		merged := tally{}
		for _, s := range g.statuses {
			merged.count += perStatus[s].count
			merged.total = merged.total.Add(perStatus[s].total)
		}
		if merged.count == 0 {
			continue
		}
		buckets = append(buckets, models.StatusBucket{
			Key:         g.key,
			Name:        g.name,
			RawStatuses: append([]models.LoanStatus(nil), g.statuses...),
			Count:       merged.count,
			TotalAmount: merged.total,
			AvgAmount:   average(merged.total, merged.count),
		})
	}
	return buckets
}

// bucketCount returns the count of the bucket with key, 0 if absent
func bucketCount(buckets []models.StatusBucket, key string) int {
	for _, b := range buckets {
		if b.Key == key {
			return b.Count
		}
	}
	return 0
}

// average divides total by count, rounded to cents. count must be positive.
func average(total decimal.Decimal, count int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// percent returns round(part/whole*100), or 0 when whole is not positive
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
