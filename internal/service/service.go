package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/analytics"
	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SnapshotRepository supplies the loans and members of a group
//
//go:generate mockgen -destination=mocks/mock_service.go -source=service.go SnapshotRepository,KeyRateProvider
type SnapshotRepository interface {
	FindGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListLoansByGroup(ctx context.Context, groupID string) ([]models.LoanRecord, error)
}

// KeyRateProvider returns the current lending benchmark rate, percent
type KeyRateProvider interface {
	GetKeyRate(ctx context.Context) (float64, error)
}

// ErrNoKeyRate is returned when no benchmark source is configured
var ErrNoKeyRate = errors.New("key rate not available")

// Service loads group snapshots and runs the analytics engine over them
type Service struct {
	repo   SnapshotRepository
	engine *analytics.Engine
	rates  KeyRateProvider
	log    *logrus.Logger
	now    func() time.Time

	mu        sync.RWMutex
	benchmark *models.MarketBenchmark
}

// NewService initializes a new service. rates may be nil, in which case
// results carry no market benchmark.
func NewService(repo SnapshotRepository, engine *analytics.Engine, rates KeyRateProvider, log *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		engine: engine,
		rates:  rates,
		log:    log,
		now:    time.Now,
	}
}

// AnalyzeGroup loads the group's snapshot and analyzes it as of asOf.
// A zero asOf means now.
func (s *Service) AnalyzeGroup(ctx context.Context, groupID string, asOf time.Time) (*models.AnalysisResult, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	group, err := s.repo.FindGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group %s: %w", groupID, err)
	}
	loans, err := s.repo.ListLoansByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get loans for group %s: %w", groupID, err)
	}

	snapshot := models.Snapshot{GroupID: groupID, Loans: loans, Members: group.Memberships}
	result, err := s.engine.Analyze(snapshot, asOf, s.currentBenchmark())
	if err != nil {
		s.log.WithFields(logrus.Fields{"group_id": groupID, "error": err}).Warn("Rejected loan snapshot")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"group_id": groupID,
		"loans":    result.TotalLoans,
		"members":  len(group.Memberships),
		"empty":    result.Empty,
	}).Info("Loan portfolio analyzed")
	return result, nil
}

// RefreshKeyRate fetches the benchmark rate and caches it for later analyses
func (s *Service) RefreshKeyRate(ctx context.Context) error {
	if s.rates == nil {
		return ErrNoKeyRate
	}
	rate, err := s.rates.GetKeyRate(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh key rate: %w", err)
	}

	s.mu.Lock()
	s.benchmark = &models.MarketBenchmark{KeyRate: rate, FetchedAt: s.now()}
	s.mu.Unlock()
	return nil
}

// KeyRate returns the cached benchmark rate, fetching it first if needed
func (s *Service) KeyRate(ctx context.Context) (float64, error) {
	if b := s.currentBenchmark(); b != nil {
		return b.KeyRate, nil
	}
	if err := s.RefreshKeyRate(ctx); err != nil {
		return 0, err
	}
	return s.currentBenchmark().KeyRate, nil
}

// StartKeyRateRefresh refreshes the key rate once and then on the cron spec.
// The caller stops the returned scheduler.
func (s *Service) StartKeyRateRefresh(spec string) (*cron.Cron, error) {
	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.RefreshKeyRate(ctx); err != nil {
			s.log.Warnf("Key rate refresh failed: %v", err)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, refresh); err != nil {
		return nil, fmt.Errorf("invalid key rate refresh schedule %q: %w", spec, err)
	}
	refresh()
	c.Start()
	return c, nil
}

// currentBenchmark returns a copy of the cached benchmark, nil if none
func (s *Service) currentBenchmark() *models.MarketBenchmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.benchmark == nil {
		return nil
	}
	b := *s.benchmark
	return &b
}
