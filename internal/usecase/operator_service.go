package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/view"
)

// Refresher triggers an immediate sync cycle so a confirmed command shows
// up without waiting for the next poll.
type Refresher interface {
	RefreshNow(ctx context.Context) error
}

// OperatorService handles the commands an operator can issue against the
// running session: toggling its status and committing a settings change.
// Command failures are surfaced to the caller, unlike polling failures
// which only ever log.
type OperatorService struct {
	fund  domain.FundService
	store *state.Store
	views *view.Controller
	sync  Refresher
	log   zerolog.Logger
}

// NewOperatorService creates a new OperatorService
func NewOperatorService(
	fund domain.FundService,
	store *state.Store,
	views *view.Controller,
	sync Refresher,
	log zerolog.Logger,
) *OperatorService {
	return &OperatorService{
		fund:  fund,
		store: store,
		views: views,
		sync:  sync,
		log:   log.With().Str("service", "operator").Logger(),
	}
}

// ToggleStatus flips the session between active and paused. The displayed
// status adopts whatever the engine confirms; on failure nothing changes
// and the error is returned for the surface to show.
func (s *OperatorService) ToggleStatus(ctx context.Context) (domain.SessionStatus, error) {
	status, err := s.fund.ToggleStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to toggle session status: %w", err)
	}

	s.store.SetSessionStatus(status)
	s.log.Info().Str("status", string(status)).Msg("session status toggled")

	if err := s.sync.RefreshNow(ctx); err != nil {
		// the confirmed toggle already landed; the next poll repairs the rest
		s.log.Warn().Err(err).Msg("refresh after toggle failed")
	}
	return status, nil
}

// CommitSettings validates the edit, submits it and performs the cold
// restart of the view: overlay closed, cache invalidated, immediate
// resync. A validation or transport failure leaves the overlay and the
// operator's input untouched.
func (s *OperatorService) CommitSettings(ctx context.Context, edit domain.SettingsEdit) error {
	update, err := edit.Validate()
	if err != nil {
		return err
	}

	if err := s.fund.SaveSettings(ctx, update); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.views.Close()
	s.store.Invalidate()
	s.log.Info().
		Float64("balance", update.Balance).
		Str("risk", update.Risk).
		Str("period", update.Period).
		Msg("settings committed, view invalidated")

	if err := s.sync.RefreshNow(ctx); err != nil {
		s.log.Warn().Err(err).Msg("resync after settings commit failed")
	}
	return nil
}
