package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tradepulse/tradepulse/internal/delivery/http/dto"
	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/utils"
	"github.com/tradepulse/tradepulse/internal/view"
)

// ViewHandler serves the dashboard read model. Every endpoint is a pure
// read over the store; nothing here ever talks to the fund engine.
type ViewHandler struct {
	store *state.Store
	views *view.Controller
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(store *state.Store, views *view.Controller) *ViewHandler {
	return &ViewHandler{
		store: store,
		views: views,
	}
}

// GetView returns the combined dashboard view
// GET /api/view
func (h *ViewHandler) GetView(c echo.Context) error {
	model, ok := h.store.Current()
	if !ok {
		return NotFoundResponse(c, "No view available yet")
	}

	snap := model.Snapshot

	status := snap.Settings.Status
	if s, ok := h.store.Status(); ok {
		status = s
	}

	trend := domain.EquityTrendPercent(snap.Capital, snap.TotalEquity)

	resp := dto.ViewResponse{
		Status:           string(status),
		Overlay:          string(h.views.Current()),
		Balance:          snap.Balance,
		Capital:          snap.Capital,
		PortfolioValue:   snap.PortfolioValue,
		TotalEquity:      snap.TotalEquity,
		EquityTrend:      trend,
		EquityTrendLabel: utils.FormatSignedPercent(trend),
		HoldingsCount:    snap.HoldingsCount,
		Settings: dto.SettingsBlock{
			RiskProfile:      snap.Settings.RiskProfile,
			InvestmentPeriod: snap.Settings.InvestmentPeriod,
			ExpectedReturn:   snap.Settings.ExpectedReturn,
		},
		FetchedAt: model.FetchedAt.Format(time.RFC3339),
		SyncEpoch: model.Epoch,
	}

	if start := snap.Settings.StartDate; start != nil && !start.IsZero() {
		resp.Settings.StartDate = start.Format("2006-01-02")
		if period, ok := domain.ParsePeriod(snap.Settings.InvestmentPeriod); ok {
			resp.InvestmentDay, resp.InvestmentDays = domain.PeriodProgress(start.Time, period, time.Now())
		}
	}

	return SuccessResponse(c, resp)
}

// GetHoldings returns the enriched portfolio positions
// GET /api/view/holdings
func (h *ViewHandler) GetHoldings(c echo.Context) error {
	model, ok := h.store.Current()
	if !ok {
		return NotFoundResponse(c, "No view available yet")
	}

	enriched := domain.EnrichHoldings(model.Snapshot.Portfolio)
	rows := make([]dto.HoldingRow, 0, len(enriched))
	for _, holding := range enriched {
		rows = append(rows, dto.HoldingRow{
			Symbol:       holding.Symbol,
			Qty:          holding.Qty,
			AvgPrice:     holding.AvgPrice,
			CurrentPrice: holding.CurrentPrice,
			MarketValue:  holding.MarketValue,
			PnL:          holding.PnL,
			PnLPercent:   holding.PnLPercent,
			PnLLabel:     utils.FormatSignedPercent(holding.PnLPercent),
		})
	}

	return SuccessResponse(c, dto.HoldingsResponse{Holdings: rows})
}

// GetTrades returns the trade feed in server order
// GET /api/view/trades
func (h *ViewHandler) GetTrades(c echo.Context) error {
	model, ok := h.store.Current()
	if !ok {
		return NotFoundResponse(c, "No view available yet")
	}

	rows := make([]dto.TradeRow, 0, len(model.Trades))
	for _, trade := range model.Trades {
		rows = append(rows, dto.TradeRow{
			ID:        trade.ID,
			Timestamp: utils.FormatTimestamp(trade.Timestamp.Time),
			Symbol:    trade.Symbol,
			Action:    trade.Action,
			Price:     trade.Price,
			Qty:       trade.Qty,
			AIReason:  trade.AIReason,
		})
	}

	resp := dto.TradesResponse{Trades: rows}
	if len(rows) == 0 {
		resp.Message = "no activity yet"
	}

	return SuccessResponse(c, resp)
}

// SetOverlay switches the visible overlay. Opening one overlay closes
// the other; the state machine never shows two at once.
// PUT /api/view/overlay
func (h *ViewHandler) SetOverlay(c echo.Context) error {
	var req dto.OverlayRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	switch strings.ToUpper(strings.TrimSpace(req.Overlay)) {
	case "CONFIG":
		h.views.OpenConfig()
	case "HOLDINGS":
		h.views.OpenHoldings()
	case "CLOSED", "":
		h.views.Close()
	default:
		return BadRequestResponse(c, "Overlay must be CONFIG, HOLDINGS or CLOSED")
	}

	return SuccessResponse(c, dto.OverlayRequest{Overlay: string(h.views.Current())})
}
