package domain

// SessionStatus reflects whether the simulated trading session is running
type SessionStatus string

// Session status values as reported by the fund engine
const (
	StatusActive SessionStatus = "ACTIVE"
	StatusPaused SessionStatus = "PAUSED"
)

// RiskProfile constants
const (
	RiskConservative = "Conservative"
	RiskBalanced     = "Balanced"
	RiskAggressive   = "Aggressive"
)

// ValidRiskProfile reports whether the given profile is one the engine accepts
func ValidRiskProfile(profile string) bool {
	switch profile {
	case RiskConservative, RiskBalanced, RiskAggressive:
		return true
	}
	return false
}

// StatsSnapshot is the aggregate portfolio state returned by the fund
// engine on every poll. The engine produces it atomically and the client
// treats it as a full replacement, never as a patch. Numeric fields are
// pointers because the engine may omit them while a session is warming up;
// absence must degrade rendering, not crash it.
type StatsSnapshot struct {
	Balance        *float64           `json:"balance,omitempty"`
	Capital        *float64           `json:"capital,omitempty"`
	PortfolioValue *float64           `json:"portfolio_value,omitempty"`
	TotalEquity    *float64           `json:"total_equity,omitempty"`
	HoldingsCount  int                `json:"holdings_count"`
	Settings       Settings           `json:"settings"`
	Portfolio      []PortfolioHolding `json:"portfolio"`
}

// Settings is the simulation configuration embedded in every snapshot.
// It is mutated only through a settings commit; everywhere else it is
// read-only.
type Settings struct {
	RiskProfile      string        `json:"risk_profile,omitempty"`
	InvestmentPeriod string        `json:"investment_period,omitempty"`
	ExpectedReturn   *float64      `json:"expected_return,omitempty"`
	Status           SessionStatus `json:"status,omitempty"`
	StartDate        *FlexibleTime `json:"start_date,omitempty"`
}

// PortfolioHolding is a single position inside a snapshot. The engine
// normally enriches holdings with market value and P&L; its fallback path
// (no live quote) sends only the cost-basis fields, so the derived fields
// are pointers and the client fills them in when absent. An engine-supplied
// value is always passed through untouched.
type PortfolioHolding struct {
	Symbol       string   `json:"symbol"`
	Qty          int      `json:"qty"`
	AvgPrice     float64  `json:"avg_price"`
	CurrentPrice float64  `json:"current_price"`
	MarketValue  *float64 `json:"market_value,omitempty"`
	PnL          *float64 `json:"pnl,omitempty"`
	PnLPercent   *float64 `json:"pnl_percent,omitempty"`
}
