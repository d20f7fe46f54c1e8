package domain

// TradeRecord is one executed trade as reported by the fund engine.
// Records are immutable once received. The engine returns them most
// recent first, capped at 50; the client preserves that order and never
// re-sorts.
type TradeRecord struct {
	ID        string       `json:"_id"`
	Timestamp FlexibleTime `json:"timestamp"`
	Symbol    string       `json:"symbol"`
	Action    string       `json:"action"`
	Price     float64      `json:"price"`
	Qty       int          `json:"qty"`
	AIReason  string       `json:"ai_reason"`
}

// TradeAction constants
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)
