package domain

import (
	"time"

	"github.com/google/uuid"
)

// EquityPoint is one sampled observation of the session's equity,
// persisted so the dashboard keeps a curve even though the engine only
// ever reports the current state.
type EquityPoint struct {
	ID            uuid.UUID `json:"id"`
	TakenAt       time.Time `json:"taken_at"`
	Balance       *float64  `json:"balance,omitempty"`
	TotalEquity   *float64  `json:"total_equity,omitempty"`
	Capital       *float64  `json:"capital,omitempty"`
	HoldingsCount int       `json:"holdings_count"`
}

// DailyDigest summarizes the session for the end-of-day notification
type DailyDigest struct {
	GeneratedAt    time.Time
	Status         SessionStatus
	TotalEquity    *float64
	TrendPercent   *float64
	Day            int
	TotalDays      int
	TradesArchived int64
}
