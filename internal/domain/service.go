package domain

import "context"

// FundService defines the interface to the fund engine's REST API. All
// four operations share one transport; timeouts belong to that transport
// and reach callers as TransportErrors like any other failure.
type FundService interface {
	// FetchStats retrieves the current aggregate portfolio snapshot
	FetchStats(ctx context.Context) (*StatsSnapshot, error)

	// FetchTrades retrieves recent trades, most recent first, possibly empty
	FetchTrades(ctx context.Context) ([]TradeRecord, error)

	// ToggleStatus flips the session between ACTIVE and PAUSED and returns
	// the status the engine settled on
	ToggleStatus(ctx context.Context) (SessionStatus, error)

	// SaveSettings submits a validated settings update. The engine may
	// restart the simulated session as a side effect.
	SaveSettings(ctx context.Context, update SettingsUpdate) error
}
