package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// EquityHistoryRepositoryImpl implements the EquityHistoryRepository interface
type EquityHistoryRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewEquityHistoryRepository creates a new EquityHistoryRepository
func NewEquityHistoryRepository(db *pgxpool.Pool) domain.EquityHistoryRepository {
	return &EquityHistoryRepositoryImpl{db: db}
}

// Insert stores one sampled equity observation. Nil metrics are stored as
// NULL so a sparse engine response stays distinguishable from zero.
func (r *EquityHistoryRepositoryImpl) Insert(ctx context.Context, point *domain.EquityPoint) error {
	query := `
		INSERT INTO equity_history (
			id, taken_at, balance, total_equity, capital, holdings_count
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.Exec(ctx, query,
		point.ID,
		point.TakenAt,
		point.Balance,
		point.TotalEquity,
		point.Capital,
		point.HoldingsCount,
	)

	if err != nil {
		return fmt.Errorf("failed to insert equity point: %w", err)
	}

	return nil
}

// ListSince retrieves samples taken at or after the given instant, oldest first
func (r *EquityHistoryRepositoryImpl) ListSince(ctx context.Context, since time.Time) ([]*domain.EquityPoint, error) {
	query := `
		SELECT id, taken_at, balance, total_equity, capital, holdings_count
		FROM equity_history
		WHERE taken_at >= $1
		ORDER BY taken_at ASC
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query equity history: %w", err)
	}
	defer rows.Close()

	var points []*domain.EquityPoint
	for rows.Next() {
		point := &domain.EquityPoint{}
		err := rows.Scan(
			&point.ID,
			&point.TakenAt,
			&point.Balance,
			&point.TotalEquity,
			&point.Capital,
			&point.HoldingsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equity point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equity history: %w", err)
	}

	return points, nil
}

// DeleteOlderThan prunes samples taken before the cutoff
func (r *EquityHistoryRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM equity_history
		WHERE taken_at < $1
	`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune equity history: %w", err)
	}

	return tag.RowsAffected(), nil
}
