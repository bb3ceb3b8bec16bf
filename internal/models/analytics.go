package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryID identifies a loan purpose category
type CategoryID string

const (
	CategoryBusiness  CategoryID = "business"
	CategoryEducation CategoryID = "education"
	CategoryMedical   CategoryID = "medical"
	CategoryHome      CategoryID = "home"
	CategoryEmergency CategoryID = "emergency"
	CategoryOther     CategoryID = "other"
)

// StatusBucket represents loans grouped by a logical lifecycle status
type StatusBucket struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	RawStatuses []LoanStatus    `json:"raw_statuses"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AvgAmount   decimal.Decimal `json:"avg_amount"`
}

// PurposeCategory represents loans grouped by classified purpose
type PurposeCategory struct {
	ID              CategoryID      `json:"id"`
	Name            string          `json:"name"`
	Icon            string          `json:"icon"`
	Count           int             `json:"count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AvgAmount       decimal.Decimal `json:"avg_amount"`
	SuccessCount    int             `json:"success_count"`
	SuccessRate     int             `json:"success_rate"` // Percent of loans REPAID
	RiskLevel       string          `json:"risk_level"`
	InterestRate    float64         `json:"interest_rate"`
	Term            string          `json:"term"`
	PopularIn       []string        `json:"popular_in"`
	TopContributors []string        `json:"top_contributors"`
	RateSpread      *float64        `json:"rate_spread,omitempty"` // InterestRate minus market key rate
}

// TrendEstimation records which series of a trend point were filled synthetically
type TrendEstimation struct {
	Statuses  []string `json:"statuses,omitempty"`
	Purposes  []string `json:"purposes,omitempty"`
	Repayment bool     `json:"repayment,omitempty"`
}

// MonthlyTrendPoint is one month of the six-month trend series
type MonthlyTrendPoint struct {
	Month           string          `json:"month"` // Short month name, e.g. "Jan"
	Year            int             `json:"year"`
	StatusCounts    map[string]int  `json:"status_counts"`
	PurposeCounts   map[string]int  `json:"purpose_counts"`
	OnTimePct       int             `json:"on_time_pct"`
	LatePct         int             `json:"late_pct"`
	RepaymentSample int             `json:"repayment_sample"`
	Insufficient    bool            `json:"insufficient"`
	Estimated       TrendEstimation `json:"estimated"`
}

// RepaymentPerformance summarizes repayment timeliness over the whole snapshot
type RepaymentPerformance struct {
	OnTime    int    `json:"on_time"`
	Late      int    `json:"late"`
	OnTimePct int    `json:"on_time_pct"`
	Rating    string `json:"rating"`
}

// Metrics holds cooperative-wide KPIs derived from the status buckets
type Metrics struct {
	Total             int      `json:"total"`
	CompletionRate    int      `json:"completion_rate"`
	DefaultRate       int      `json:"default_rate"`
	ActivePct         int      `json:"active_pct"`
	PendingPct        int      `json:"pending_pct"`
	CompletionRating  string   `json:"completion_rating"`
	DefaultVsIndustry string   `json:"default_vs_industry"` // "below", "at" or "above"
	Insights          []string `json:"insights"`
}

// MarketBenchmark carries the central bank key rate used for pricing comparison
type MarketBenchmark struct {
	KeyRate   float64   `json:"key_rate"`
	FetchedAt time.Time `json:"fetched_at"`
}

// AnalysisResult is the view-model handed to the presentation layer
type AnalysisResult struct {
	GroupID              string                `json:"group_id,omitempty"`
	GeneratedAt          time.Time             `json:"generated_at"`
	Empty                bool                  `json:"empty"`
	TotalLoans           int                   `json:"total_loans"`
	TotalPrincipal       decimal.Decimal       `json:"total_principal"`
	StatusBuckets        []StatusBucket        `json:"status_buckets"`
	PurposeCategories    []PurposeCategory     `json:"purpose_categories"`
	Trends               []MonthlyTrendPoint   `json:"trends"`
	Metrics              *Metrics              `json:"metrics,omitempty"`
	RepaymentPerformance *RepaymentPerformance `json:"repayment_performance,omitempty"`
	AverageContribution  decimal.Decimal       `json:"average_contribution"`
	Benchmark            *MarketBenchmark      `json:"benchmark,omitempty"`
}
