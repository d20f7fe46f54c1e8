package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

// GuardService watches the equity trend and pauses the session when it
// falls through the configured drawdown limit. It acts through the same
// toggle the operator uses, so the engine stays the single authority on
// session status.
type GuardService struct {
	fund         domain.FundService
	store        *state.Store
	sync         *Synchronizer
	notifService NotificationService
	limit        float64
	log          zerolog.Logger
}

// NewGuardService creates a new GuardService. The limit is a negative
// percent; a zero or positive limit disables the guard.
func NewGuardService(
	fund domain.FundService,
	store *state.Store,
	sync *Synchronizer,
	notifService NotificationService,
	limit float64,
	log zerolog.Logger,
) *GuardService {
	return &GuardService{
		fund:         fund,
		store:        store,
		sync:         sync,
		notifService: notifService,
		limit:        limit,
		log:          log.With().Str("service", "drawdown-guard").Logger(),
	}
}

// CheckDrawdown pauses an active session whose equity trend is at or
// below the limit. It runs on the cached view, so it never fires before
// the first successful sync.
func (s *GuardService) CheckDrawdown(ctx context.Context) error {
	if s.limit >= 0 {
		return nil
	}

	status, ok := s.store.Status()
	if !ok || status != domain.StatusActive {
		return nil
	}

	model, ok := s.store.Current()
	if !ok {
		return nil
	}

	trend := domain.EquityTrendPercent(model.Snapshot.Capital, model.Snapshot.TotalEquity)
	if trend == nil || *trend > s.limit {
		return nil
	}

	s.log.Warn().
		Float64("trend_percent", *trend).
		Float64("limit", s.limit).
		Msg("drawdown limit breached, pausing session")

	newStatus, err := s.fund.ToggleStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause session: %w", err)
	}
	if newStatus == domain.StatusActive {
		// the toggle endpoint is blind: the engine was already paused
		// and the call just resumed it, so flip it back
		s.log.Warn().Msg("engine was already paused, reverting accidental resume")
		if reverted, err := s.fund.ToggleStatus(ctx); err == nil {
			newStatus = reverted
		}
	}
	s.store.SetSessionStatus(newStatus)

	if s.notifService != nil {
		if err := s.notifService.SendGuardAlert(*trend, newStatus); err != nil {
			s.log.Warn().Err(err).Msg("failed to send guard alert")
		}
	}

	if err := s.sync.RefreshNow(ctx); err != nil {
		s.log.Warn().Err(err).Msg("refresh after guard pause failed")
	}
	return nil
}
