package analytics

import (
	"fmt"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

const (
	// IndustryDefaultRate is the reference default rate for cooperative lending, percent
	IndustryDefaultRate = 12
	// CompletionTarget is the cooperative's completion goal, percent
	CompletionTarget = 85

	excellentThreshold = 90
	goodThreshold      = 80
)

// Ratings
const (
	RatingExcellent  = "excellent"
	RatingGood       = "good"
	RatingConcerning = "concerning"
)

// Rate labels a percentage: excellent from 90, good from 80, concerning below
func Rate(pct int) string {
	switch {
	case pct >= excellentThreshold:
		return RatingExcellent
	case pct >= goodThreshold:
		return RatingGood
	default:
		return RatingConcerning
	}
}

// ComputeMetrics derives portfolio KPIs from the status buckets. A zero total
// has no metrics and returns nil.
func ComputeMetrics(buckets []models.StatusBucket, total int) *models.Metrics {
	if total <= 0 {
		return nil
	}

	m := &models.Metrics{
		Total:          total,
		CompletionRate: percent(bucketCount(buckets, BucketCompleted), total),
		DefaultRate:    percent(bucketCount(buckets, BucketDefaulted), total),
		ActivePct:      percent(bucketCount(buckets, BucketActive), total),
		PendingPct:     percent(bucketCount(buckets, BucketPending), total),
	}
	m.CompletionRating = Rate(m.CompletionRate)
	m.DefaultVsIndustry = compareToIndustry(m.DefaultRate)

	m.Insights = []string{defaultInsight(m.DefaultRate), completionInsight(m.CompletionRate)}
	return m
}

func compareToIndustry(defaultRate int) string {
	switch {
	case defaultRate < IndustryDefaultRate:
		return "below"
	case defaultRate > IndustryDefaultRate:
		return "above"
	default:
		return "at"
	}
}

func defaultInsight(defaultRate int) string {
	switch diff := defaultRate - IndustryDefaultRate; {
	case diff < 0:
		return fmt.Sprintf("Default rate of %d%% is %d points below the %d%% industry average.", defaultRate, -diff, IndustryDefaultRate)
	case diff > 0:
		return fmt.Sprintf("Default rate of %d%% is %d points above the %d%% industry average.", defaultRate, diff, IndustryDefaultRate)
	default:
		return fmt.Sprintf("Default rate of %d%% matches the industry average.", defaultRate)
	}
}

func completionInsight(completionRate int) string {
	verb := "is below"
	if completionRate >= CompletionTarget {
		verb = "meets"
	}
	return fmt.Sprintf("Completion rate of %d%% %s the %d%% target and is rated %s.",
		completionRate, verb, CompletionTarget, Rate(completionRate))
}

// RepaymentPerformance summarizes timeliness over all loans. Snapshots with no
// on-time or late loans return nil.
func RepaymentPerformance(loans []models.LoanRecord) *models.RepaymentPerformance {
	perf := &models.RepaymentPerformance{}
	for _, loan := range loans {
		switch {
		case isOnTime(loan):
			perf.OnTime++
		case loan.Status == models.StatusDefaulted:
			perf.Late++
		}
	}
	if perf.OnTime+perf.Late == 0 {
		return nil
	}
	perf.OnTimePct = percent(perf.OnTime, perf.OnTime+perf.Late)
	perf.Rating = Rate(perf.OnTimePct)
	return perf
}
