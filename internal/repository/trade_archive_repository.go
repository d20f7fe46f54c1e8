package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// TradeArchiveRepositoryImpl implements the TradeArchiveRepository interface
type TradeArchiveRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTradeArchiveRepository creates a new TradeArchiveRepository
func NewTradeArchiveRepository(db *pgxpool.Pool) domain.TradeArchiveRepository {
	return &TradeArchiveRepositoryImpl{db: db}
}

// Archive stores a trade keyed by its engine id. Replays of a trade the
// archive has already seen are ignored via ON CONFLICT, which is what
// makes re-walking the engine's rolling window every run safe.
func (r *TradeArchiveRepositoryImpl) Archive(ctx context.Context, trade *domain.TradeRecord) (bool, error) {
	query := `
		INSERT INTO trade_archive (
			id, fund_trade_id, executed_at, symbol, action, price, qty, ai_reason, archived_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
		ON CONFLICT (fund_trade_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		uuid.New(),
		trade.ID,
		trade.Timestamp.Time,
		trade.Symbol,
		trade.Action,
		trade.Price,
		trade.Qty,
		trade.AIReason,
	)

	if err != nil {
		return false, fmt.Errorf("failed to archive trade: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountSince counts archived trades executed at or after the given instant
func (r *TradeArchiveRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM trade_archive
		WHERE executed_at >= $1
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count archived trades: %w", err)
	}

	return count, nil
}
