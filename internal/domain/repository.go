package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EquityHistoryRepository defines the interface for equity curve storage
type EquityHistoryRepository interface {
	// Insert stores one sampled equity observation
	Insert(ctx context.Context, point *EquityPoint) error

	// ListSince retrieves samples taken at or after the given instant,
	// oldest first
	ListSince(ctx context.Context, since time.Time) ([]*EquityPoint, error)

	// DeleteOlderThan prunes samples taken before the cutoff and returns
	// how many rows were removed
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// TradeArchiveRepository defines the interface for the local trade archive.
// The engine only keeps the most recent trades, so the client archives
// what it observes.
type TradeArchiveRepository interface {
	// Archive stores a trade if its engine id has not been seen before.
	// It reports whether a new row was written.
	Archive(ctx context.Context, trade *TradeRecord) (bool, error)

	// CountSince counts archived trades executed at or after the given instant
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// OperatorRepository defines the interface for operator account storage
type OperatorRepository interface {
	// Create creates a new operator account
	Create(ctx context.Context, operator *Operator) error

	// GetByID retrieves an operator by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Operator, error)

	// GetByUsername retrieves an operator by username
	GetByUsername(ctx context.Context, username string) (*Operator, error)
}
