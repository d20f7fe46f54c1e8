package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

// DigestService composes the end-of-day summary from the cached view and
// the local trade archive and hands it to the notifier.
type DigestService struct {
	store        *state.Store
	archive      domain.TradeArchiveRepository
	notifService NotificationService
	log          zerolog.Logger
}

// NewDigestService creates a new DigestService
func NewDigestService(store *state.Store, archive domain.TradeArchiveRepository, notifService NotificationService, log zerolog.Logger) *DigestService {
	return &DigestService{
		store:        store,
		archive:      archive,
		notifService: notifService,
		log:          log.With().Str("service", "daily-digest").Logger(),
	}
}

// SendDailyDigest builds and sends today's digest. It is skipped when no
// view has been published yet or no notifier is configured.
func (s *DigestService) SendDailyDigest(ctx context.Context) error {
	if s.notifService == nil {
		return nil
	}

	model, ok := s.store.Current()
	if !ok {
		s.log.Info().Msg("no view model available, skipping daily digest")
		return nil
	}

	status, _ := s.store.Status()

	digest := domain.DailyDigest{
		GeneratedAt:  time.Now(),
		Status:       status,
		TotalEquity:  model.Snapshot.TotalEquity,
		TrendPercent: domain.EquityTrendPercent(model.Snapshot.Capital, model.Snapshot.TotalEquity),
	}

	settings := model.Snapshot.Settings
	if settings.StartDate != nil && !settings.StartDate.IsZero() {
		if period, ok := domain.ParsePeriod(settings.InvestmentPeriod); ok {
			digest.Day, digest.TotalDays = domain.PeriodProgress(settings.StartDate.Time, period, time.Now())
		}
	}

	count, err := s.archive.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to count archived trades")
	} else {
		digest.TradesArchived = count
	}

	if err := s.notifService.SendDigest(digest); err != nil {
		return fmt.Errorf("failed to send daily digest: %w", err)
	}

	s.log.Info().Msg("daily digest sent")
	return nil
}
