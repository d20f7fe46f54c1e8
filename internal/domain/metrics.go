package domain

// Derived metrics are pure functions over snapshot data: no I/O, no
// state, same output for the same input. Rounding for display happens in
// the rendering layer and never touches the stored numerics.

// EquityTrendPercent returns the percentage gain or loss of total equity
// against initial capital, or nil when either input is missing. The sign
// always matches total_equity - capital.
func EquityTrendPercent(capital, totalEquity *float64) *float64 {
	if capital == nil || totalEquity == nil || *capital == 0 {
		return nil
	}
	trend := (*totalEquity - *capital) / *capital * 100
	return &trend
}

// EnrichHolding fills in the derived fields the engine omitted on its
// fallback path. Engine-supplied values pass through untouched; the input
// is never written to, only the returned copy.
func EnrichHolding(h PortfolioHolding) PortfolioHolding {
	if h.MarketValue == nil {
		mv := float64(h.Qty) * h.CurrentPrice
		h.MarketValue = &mv
	}
	if h.PnL == nil {
		pnl := float64(h.Qty) * (h.CurrentPrice - h.AvgPrice)
		h.PnL = &pnl
	}
	if h.PnLPercent == nil {
		// zero cost basis derives a zero percent, same as the engine
		pct := 0.0
		if h.AvgPrice > 0 {
			pct = (h.CurrentPrice - h.AvgPrice) / h.AvgPrice * 100
		}
		h.PnLPercent = &pct
	}
	return h
}

// EnrichHoldings applies EnrichHolding to every position of a snapshot,
// returning a fresh slice so the source snapshot stays untouched
func EnrichHoldings(holdings []PortfolioHolding) []PortfolioHolding {
	if holdings == nil {
		return nil
	}
	out := make([]PortfolioHolding, len(holdings))
	for i, h := range holdings {
		out[i] = EnrichHolding(h)
	}
	return out
}
