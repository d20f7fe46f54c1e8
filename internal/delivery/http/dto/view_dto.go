package dto

// ViewResponse is the combined dashboard payload: the latest snapshot,
// the derived metrics and the overlay state in one read.
type ViewResponse struct {
	Status           string        `json:"status"`
	Overlay          string        `json:"overlay"`
	Balance          *float64      `json:"balance,omitempty"`
	Capital          *float64      `json:"capital,omitempty"`
	PortfolioValue   *float64      `json:"portfolio_value,omitempty"`
	TotalEquity      *float64      `json:"total_equity,omitempty"`
	EquityTrend      *float64      `json:"equity_trend_percent,omitempty"`
	EquityTrendLabel string        `json:"equity_trend_label"`
	HoldingsCount    int           `json:"holdings_count"`
	InvestmentDay    int           `json:"investment_day,omitempty"`
	InvestmentDays   int           `json:"investment_days,omitempty"`
	Settings         SettingsBlock `json:"settings"`
	FetchedAt        string        `json:"fetched_at"`
	SyncEpoch        uint64        `json:"sync_epoch"`
}

// SettingsBlock mirrors the engine's simulation settings
type SettingsBlock struct {
	RiskProfile      string   `json:"risk_profile,omitempty"`
	InvestmentPeriod string   `json:"investment_period,omitempty"`
	ExpectedReturn   *float64 `json:"expected_return,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
}

// HoldingRow represents one enriched portfolio position
type HoldingRow struct {
	Symbol       string   `json:"symbol"`
	Qty          int      `json:"qty"`
	AvgPrice     float64  `json:"avg_price"`
	CurrentPrice float64  `json:"current_price"`
	MarketValue  *float64 `json:"market_value,omitempty"`
	PnL          *float64 `json:"pnl,omitempty"`
	PnLPercent   *float64 `json:"pnl_percent,omitempty"`
	PnLLabel     string   `json:"pnl_label"`
}

// HoldingsResponse wraps the holdings overlay payload
type HoldingsResponse struct {
	Holdings []HoldingRow `json:"holdings"`
}

// TradeRow represents one executed trade in API responses
type TradeRow struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Symbol    string  `json:"symbol"`
	Action    string  `json:"action"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	AIReason  string  `json:"ai_reason"`
}

// TradesResponse wraps the trade feed. Message carries the placeholder
// text when the session has no activity yet.
type TradesResponse struct {
	Trades  []TradeRow `json:"trades"`
	Message string     `json:"message,omitempty"`
}

// OverlayRequest selects which overlay is visible
type OverlayRequest struct {
	Overlay string `json:"overlay"`
}
