package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepulse/tradepulse/internal/delivery/http/dto"
	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/view"
)

func f64(v float64) *float64 { return &v }

func seededStore(t *testing.T, snap domain.StatsSnapshot, trades []domain.TradeRecord) *state.Store {
	t.Helper()
	store := state.NewStore()
	require.NoError(t, store.Publish(store.Epoch(), &snap, trades))
	return store
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestGetViewReturnsCombinedModel(t *testing.T) {
	start := time.Now().Add(-10 * 24 * time.Hour)
	store := seededStore(t, domain.StatsSnapshot{
		Balance:        f64(25000),
		Capital:        f64(100000),
		PortfolioValue: f64(87500),
		TotalEquity:    f64(112500),
		HoldingsCount:  2,
		Settings: domain.Settings{
			RiskProfile:      domain.RiskBalanced,
			InvestmentPeriod: "1 Month",
			ExpectedReturn:   f64(15),
			Status:           domain.StatusActive,
			StartDate:        &domain.FlexibleTime{Time: start},
		},
	}, nil)

	h := NewViewHandler(store, view.NewController())
	rec := doJSON(t, h.GetView, http.MethodGet, "/api/view", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status string           `json:"status"`
		Data   dto.ViewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "ACTIVE", envelope.Data.Status)
	assert.Equal(t, "CLOSED", envelope.Data.Overlay)
	assert.Equal(t, "+12.50%", envelope.Data.EquityTrendLabel)
	require.NotNil(t, envelope.Data.EquityTrend)
	assert.InDelta(t, 12.5, *envelope.Data.EquityTrend, 0.001)
	assert.Equal(t, 2, envelope.Data.HoldingsCount)
	assert.Equal(t, domain.RiskBalanced, envelope.Data.Settings.RiskProfile)
	assert.Equal(t, 11, envelope.Data.InvestmentDay)
	assert.Equal(t, 30, envelope.Data.InvestmentDays)
	assert.Equal(t, store.Epoch(), envelope.Data.SyncEpoch)
	assert.NotEmpty(t, envelope.Data.FetchedAt)
}

func TestGetViewPrefersToggledStatus(t *testing.T) {
	store := seededStore(t, domain.StatsSnapshot{
		Settings: domain.Settings{Status: domain.StatusActive},
	}, nil)
	store.SetSessionStatus(domain.StatusPaused)

	h := NewViewHandler(store, view.NewController())
	rec := doJSON(t, h.GetView, http.MethodGet, "/api/view", "")

	var envelope struct {
		Data dto.ViewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "PAUSED", envelope.Data.Status)
}

func TestGetViewBeforeFirstSync(t *testing.T) {
	h := NewViewHandler(state.NewStore(), view.NewController())
	rec := doJSON(t, h.GetView, http.MethodGet, "/api/view", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHoldingsEnrichesFallbackRows(t *testing.T) {
	store := seededStore(t, domain.StatsSnapshot{
		Portfolio: []domain.PortfolioHolding{
			{Symbol: "AAPL", Qty: 10, AvgPrice: 100, CurrentPrice: 110},
		},
	}, nil)

	h := NewViewHandler(store, view.NewController())
	rec := doJSON(t, h.GetHoldings, http.MethodGet, "/api/view/holdings", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data dto.HoldingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Holdings, 1)

	row := envelope.Data.Holdings[0]
	require.NotNil(t, row.MarketValue)
	assert.Equal(t, 1100.0, *row.MarketValue)
	require.NotNil(t, row.PnL)
	assert.Equal(t, 100.0, *row.PnL)
	assert.Equal(t, "+10.00%", row.PnLLabel)
}

func TestGetTradesPreservesServerOrder(t *testing.T) {
	trades := []domain.TradeRecord{
		{ID: "t2", Symbol: "MSFT", Action: domain.ActionSell, Price: 420.5, Qty: 3},
		{ID: "t1", Symbol: "AAPL", Action: domain.ActionBuy, Price: 187.2, Qty: 10},
	}
	store := seededStore(t, domain.StatsSnapshot{}, trades)

	h := NewViewHandler(store, view.NewController())
	rec := doJSON(t, h.GetTrades, http.MethodGet, "/api/view/trades", "")

	var envelope struct {
		Data dto.TradesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Trades, 2)
	assert.Equal(t, "t2", envelope.Data.Trades[0].ID, "server order is preserved, no client re-sort")
	assert.Equal(t, "t1", envelope.Data.Trades[1].ID)
	assert.Empty(t, envelope.Data.Message)
}

func TestGetTradesEmptyState(t *testing.T) {
	store := seededStore(t, domain.StatsSnapshot{}, nil)

	h := NewViewHandler(store, view.NewController())
	rec := doJSON(t, h.GetTrades, http.MethodGet, "/api/view/trades", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trades":[]`, "empty feed must be an array, not null")

	var envelope struct {
		Data dto.TradesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "no activity yet", envelope.Data.Message)
}

func TestSetOverlayTransitions(t *testing.T) {
	store := seededStore(t, domain.StatsSnapshot{}, nil)
	views := view.NewController()
	h := NewViewHandler(store, views)

	rec := doJSON(t, h.SetOverlay, http.MethodPut, "/api/view/overlay", `{"overlay":"CONFIG"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.ShowingConfig, views.Current())

	// opening the other overlay replaces, never stacks
	rec = doJSON(t, h.SetOverlay, http.MethodPut, "/api/view/overlay", `{"overlay":"HOLDINGS"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.ShowingHoldings, views.Current())

	rec = doJSON(t, h.SetOverlay, http.MethodPut, "/api/view/overlay", `{"overlay":"CLOSED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.Closed, views.Current())

	rec = doJSON(t, h.SetOverlay, http.MethodPut, "/api/view/overlay", `{"overlay":"SIDEBAR"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, view.Closed, views.Current())
}
