package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

// HistorySampler persists equity observations from the shared view model.
// The engine only reports its current state, so sampling is the only way
// the dashboard gets a curve to draw.
type HistorySampler struct {
	store     *state.Store
	history   domain.EquityHistoryRepository
	retention time.Duration
	log       zerolog.Logger

	mu          sync.Mutex
	lastSampled time.Time
}

// NewHistorySampler creates a new HistorySampler. Samples older than the
// retention window are pruned on each run.
func NewHistorySampler(store *state.Store, history domain.EquityHistoryRepository, retention time.Duration, log zerolog.Logger) *HistorySampler {
	return &HistorySampler{
		store:     store,
		history:   history,
		retention: retention,
		log:       log.With().Str("service", "history-sampler").Logger(),
	}
}

// Sample records the current view model as one equity point. A run is
// skipped when nothing has been fetched yet or when the view has not
// refreshed since the previous sample, so a down engine never produces
// duplicate flat-line rows.
func (s *HistorySampler) Sample(ctx context.Context) error {
	model, ok := s.store.Current()
	if !ok {
		s.log.Debug().Msg("no view model yet, skipping sample")
		return nil
	}

	s.mu.Lock()
	if !model.FetchedAt.After(s.lastSampled) {
		s.mu.Unlock()
		s.log.Debug().Time("fetched_at", model.FetchedAt).Msg("view unchanged since last sample, skipping")
		return nil
	}
	s.lastSampled = model.FetchedAt
	s.mu.Unlock()

	point := &domain.EquityPoint{
		ID:            uuid.New(),
		TakenAt:       model.FetchedAt,
		Balance:       model.Snapshot.Balance,
		TotalEquity:   model.Snapshot.TotalEquity,
		Capital:       model.Snapshot.Capital,
		HoldingsCount: model.Snapshot.HoldingsCount,
	}
	if err := s.history.Insert(ctx, point); err != nil {
		return fmt.Errorf("failed to insert equity point: %w", err)
	}

	if s.retention > 0 {
		cutoff := time.Now().Add(-s.retention)
		removed, err := s.history.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			// pruning is retried on the next run
			s.log.Warn().Err(err).Msg("failed to prune equity history")
		} else if removed > 0 {
			s.log.Debug().Int64("removed", removed).Msg("pruned equity history")
		}
	}

	return nil
}
