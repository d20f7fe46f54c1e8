package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

// Synchronizer owns the recurring fetch of stats and trades from the fund
// engine. On activation it runs one cycle immediately, then one per
// interval until deactivated. Each cycle fetches both resources
// concurrently and publishes a combined view model only when both
// succeed; a failed cycle leaves the previous model visible and the next
// tick is the retry. The store's epoch guarantees that a cycle resolving
// after deactivation or after a settings commit cannot publish.
type Synchronizer struct {
	fund     domain.FundService
	store    *state.Store
	interval time.Duration
	log      zerolog.Logger

	inFlight atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSynchronizer creates a new synchronizer polling at the given interval
func NewSynchronizer(fund domain.FundService, store *state.Store, interval time.Duration, log zerolog.Logger) *Synchronizer {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Synchronizer{
		fund:     fund,
		store:    store,
		interval: interval,
		log:      log.With().Str("service", "synchronizer").Logger(),
	}
}

// Activate starts the polling loop. The first cycle fires immediately.
// Calling Activate while already active is a no-op.
func (s *Synchronizer) Activate(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.log.Info().Dur("interval", s.interval).Msg("synchronizer activated")
	go s.run(ctx, s.done)
}

// Deactivate stops the polling loop and retires the current cache
// generation so an in-flight cycle cannot publish afterwards. The last
// published view model stays readable.
func (s *Synchronizer) Deactivate() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	s.store.NextEpoch()
	s.log.Info().Msg("synchronizer deactivated")
}

// RefreshNow runs one synchronization cycle immediately, bypassing the
// tick schedule. Operator commands call it after success so the view
// reconciles right away instead of waiting for arrival order to sort
// itself out.
func (s *Synchronizer) RefreshNow(ctx context.Context) error {
	if err := s.cycle(ctx); err != nil {
		s.log.Warn().Err(err).Msg("manual refresh failed")
		return err
	}
	return nil
}

func (s *Synchronizer) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick starts one cycle unless the previous one is still in flight, in
// which case the tick is skipped and the next one becomes the retry
func (s *Synchronizer) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("previous cycle still in flight, skipping tick")
		return
	}

	go func() {
		defer s.inFlight.Store(false)
		if err := s.cycle(ctx); err != nil {
			// polling never surfaces errors; staleness is the degraded mode
			s.log.Warn().Err(err).Msg("sync cycle failed, keeping last view")
		}
	}()
}

// cycle fetches stats and trades concurrently, joins both results and
// publishes them as one view model under the epoch the cycle started with
func (s *Synchronizer) cycle(ctx context.Context) error {
	epoch := s.store.Epoch()

	var snapshot *domain.StatsSnapshot
	var trades []domain.TradeRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.fund.FetchStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		trades, err = s.fund.FetchTrades(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("sync cycle: %w", err)
	}

	if err := s.store.Publish(epoch, snapshot, trades); err != nil {
		s.log.Debug().Uint64("epoch", epoch).Msg("discarding cycle published under a stale epoch")
		return err
	}

	s.log.Debug().
		Uint64("epoch", epoch).
		Int("holdings", len(snapshot.Portfolio)).
		Int("trades", len(trades)).
		Msg("view model published")
	return nil
}
