package domain

import "time"

// ViewModel is the combined dashboard state published after one
// successful sync cycle. Snapshot and trades always originate from the
// same cycle, so a consumer can never observe fresh stats next to stale
// trades or the other way around.
type ViewModel struct {
	Snapshot  StatsSnapshot
	Trades    []TradeRecord
	FetchedAt time.Time
	Epoch     uint64
}

// Clone returns a copy with its own slices so readers can hold the model
// across publishes. Optional fields inside are shared and read-only.
func (m ViewModel) Clone() ViewModel {
	out := m
	out.Snapshot.Portfolio = append([]PortfolioHolding(nil), m.Snapshot.Portfolio...)
	out.Trades = append([]TradeRecord(nil), m.Trades...)
	return out
}
