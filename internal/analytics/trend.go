package analytics

import (
	"math/rand"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

// TrendMonths is the length of the trend window
const TrendMonths = 6

// Status trend series
const (
	TrendActive    = "Active"
	TrendPending   = "Pending"
	TrendCompleted = "Completed"
	TrendDefaulted = "Defaulted"
)

// Synthetic fill ranges, inclusive
const (
	fillCountMin  = 3
	fillCountMax  = 9
	fillOnTimeMin = 90
	fillOnTimeMax = 100
)

// Bucketing selects how a loan's creation date is matched to a trend month
type Bucketing int

const (
	// BucketByMonthName matches on month name only, so the same month of an
	// earlier year lands in the window too.
	BucketByMonthName Bucketing = iota
	// BucketByCalendarMonth matches on year and month.
	BucketByCalendarMonth
)

// FillPolicy decides what a month without data shows
type FillPolicy int

const (
	// FillSynthetic substitutes pseudo-random plausible values for empty series.
	FillSynthetic FillPolicy = iota
	// FillNone leaves zeros and flags the month as insufficient.
	FillNone
)

// TrendOptions configures BuildTrends
type TrendOptions struct {
	Bucketing Bucketing
	Fill      FillPolicy
	Seed      int64 // 0 seeds from the clock
}

type statusSeries struct {
	label   string
	matches func(models.LoanStatus) bool
}

var statusSeriesOrder = []statusSeries{
	{label: TrendActive, matches: func(s models.LoanStatus) bool {
		return s == models.StatusDisbursed || s == models.StatusRepaying
	}},
	{label: TrendPending, matches: func(s models.LoanStatus) bool { return s == models.StatusPending }},
	{label: TrendCompleted, matches: func(s models.LoanStatus) bool { return s == models.StatusRepaid }},
	{label: TrendDefaulted, matches: func(s models.LoanStatus) bool { return s == models.StatusDefaulted }},
}

// BuildTrends produces one point per month for the six calendar months ending
// at now, oldest first. An empty loan list yields no points.
func BuildTrends(loans []models.LoanRecord, now time.Time, opts TrendOptions) []models.MonthlyTrendPoint {
	if len(loans) == 0 {
		return []models.MonthlyTrendPoint{}
	}
	rng := newRand(opts.Seed)

	points := make([]models.MonthlyTrendPoint, 0, TrendMonths)
	for _, start := range trendWindow(now) {
		points = append(points, buildPoint(loans, start, opts, rng))
	}
	return points
}

func buildPoint(loans []models.LoanRecord, start time.Time, opts TrendOptions, rng *rand.Rand) models.MonthlyTrendPoint {
	point := models.MonthlyTrendPoint{
		Month:         start.Format("Jan"),
		Year:          start.Year(),
		StatusCounts:  make(map[string]int, len(statusSeriesOrder)),
		PurposeCounts: make(map[string]int, len(purposeRules)),
	}

	var inMonth []models.LoanRecord
	for _, loan := range loans {
		if createdIn(loan.CreatedAt, start, opts.Bucketing) {
			inMonth = append(inMonth, loan)
		}
	}

	observed := false
	for _, series := range statusSeriesOrder {
		n := 0
		for _, loan := range inMonth {
			if series.matches(loan.Status) {
				n++
			}
		}
		if n > 0 {
			observed = true
		} else if opts.Fill == FillSynthetic {
			n = between(rng, fillCountMin, fillCountMax)
			point.Estimated.Statuses = append(point.Estimated.Statuses, series.label)
		}
		point.StatusCounts[series.label] = n
	}

	for _, r := range purposeRules {
		n := 0
		for _, loan := range inMonth {
			if MatchesGroup(loan.Purpose, r.category) {
				n++
			}
		}
		if n > 0 {
			observed = true
		} else if opts.Fill == FillSynthetic {
			n = between(rng, fillCountMin, fillCountMax)
			point.Estimated.Purposes = append(point.Estimated.Purposes, r.label)
		}
		point.PurposeCounts[r.label] = n
	}

	onTime, late := repaymentInMonth(loans, start, start.AddDate(0, 1, 0))
	point.RepaymentSample = onTime + late
	switch {
	case point.RepaymentSample > 0:
		observed = true
		point.OnTimePct = percent(onTime, point.RepaymentSample)
	case opts.Fill == FillSynthetic:
		point.OnTimePct = between(rng, fillOnTimeMin, fillOnTimeMax)
		point.Estimated.Repayment = true
	default:
		// Nothing late was observed.
		point.OnTimePct = 100
	}
	point.LatePct = 100 - point.OnTimePct
	point.Insufficient = !observed

	return point
}

// trendWindow returns the first instant of each of the six months ending at now
func trendWindow(now time.Time) []time.Time {
	months := make([]time.Time, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		months = append(months, time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location()))
	}
	return months
}

func createdIn(createdAt, monthStart time.Time, b Bucketing) bool {
	t := createdAt.In(monthStart.Location())
	if b == BucketByCalendarMonth {
		return t.Year() == monthStart.Year() && t.Month() == monthStart.Month()
	}
	return t.Month() == monthStart.Month()
}

// repaymentInMonth counts on-time and late loans for the month [start, end).
// On-time loans must exist by the end of the month; late loans are defaulted
// loans whose activity window overlaps it.
func repaymentInMonth(loans []models.LoanRecord, start, end time.Time) (onTime, late int) {
	for _, loan := range loans {
		if !loan.CreatedAt.Before(end) {
			continue
		}
		switch {
		case isOnTime(loan):
			onTime++
		case loan.Status == models.StatusDefaulted && !activityEnd(loan).Before(start):
			late++
		}
	}
	return onTime, late
}

// isOnTime reports whether a loan is being, or was, repaid on schedule
func isOnTime(loan models.LoanRecord) bool {
	switch loan.Status {
	case models.StatusRepaying:
		return true
	case models.StatusRepaid:
		return loan.RepaymentDate != nil && !loan.UpdatedAt.After(*loan.RepaymentDate)
	default:
		return false
	}
}

func activityEnd(loan models.LoanRecord) time.Time {
	if loan.UpdatedAt.IsZero() {
		return loan.CreatedAt
	}
	return loan.UpdatedAt
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a value in [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
