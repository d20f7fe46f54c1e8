package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

// TradeArchiver copies trades from the shared view model into the local
// archive. The engine keeps only its most recent trades, so anything the
// dashboard observed but never archived would be lost once it scrolls out
// of that window. New rows trigger a trade alert.
type TradeArchiver struct {
	store        *state.Store
	archive      domain.TradeArchiveRepository
	notifService NotificationService
	log          zerolog.Logger
}

// NewTradeArchiver creates a new TradeArchiver
func NewTradeArchiver(store *state.Store, archive domain.TradeArchiveRepository, notifService NotificationService, log zerolog.Logger) *TradeArchiver {
	return &TradeArchiver{
		store:        store,
		archive:      archive,
		notifService: notifService,
		log:          log.With().Str("service", "trade-archiver").Logger(),
	}
}

// ArchiveRecent walks the currently visible trades oldest first and stores
// the ones whose engine id has not been seen before. Per-trade failures
// are logged and skipped; the next run picks them up again.
func (s *TradeArchiver) ArchiveRecent(ctx context.Context) error {
	model, ok := s.store.Current()
	if !ok {
		return nil
	}

	archived := 0
	// the engine returns newest first; reverse so alerts go out in
	// execution order
	for i := len(model.Trades) - 1; i >= 0; i-- {
		trade := model.Trades[i]
		isNew, err := s.archive.Archive(ctx, &trade)
		if err != nil {
			s.log.Warn().Err(err).Str("trade_id", trade.ID).Msg("failed to archive trade")
			continue
		}
		if !isNew {
			continue
		}
		archived++

		if s.notifService != nil {
			if err := s.notifService.SendTradeAlert(trade); err != nil {
				s.log.Warn().Err(err).Str("trade_id", trade.ID).Msg("failed to send trade alert")
			}
		}
	}

	if archived > 0 {
		s.log.Info().Int("count", archived).Msg("archived new trades")
	}
	return nil
}
