package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// FundBridge talks to the Python fund engine's REST API. It implements
// domain.FundService and owns all transport concerns, including the
// request timeout; callers treat a timeout like any other TransportError.
type FundBridge struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewFundBridge creates a new fund engine bridge
func NewFundBridge(baseURL string, timeout time.Duration, log zerolog.Logger) *FundBridge {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &FundBridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("adapter", "fund_bridge").Logger(),
	}
}

// FetchStats retrieves the current aggregate portfolio snapshot
func (b *FundBridge) FetchStats(ctx context.Context) (*domain.StatsSnapshot, error) {
	url := fmt.Sprintf("%s/api/stats", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "fetch stats", Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{Op: "fetch stats", Endpoint: url, StatusCode: resp.StatusCode}
	}

	var snapshot domain.StatsSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}

	return &snapshot, nil
}

// FetchTrades retrieves recent trades in the order the engine returns
// them, most recent first
func (b *FundBridge) FetchTrades(ctx context.Context) ([]domain.TradeRecord, error) {
	url := fmt.Sprintf("%s/api/trades", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create trades request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "fetch trades", Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{Op: "fetch trades", Endpoint: url, StatusCode: resp.StatusCode}
	}

	var trades []domain.TradeRecord
	if err := json.NewDecoder(resp.Body).Decode(&trades); err != nil {
		return nil, fmt.Errorf("failed to decode trades response: %w", err)
	}

	return trades, nil
}

// ToggleStatus flips the session between ACTIVE and PAUSED. The command
// carries no payload; the engine decides and reports the resulting status.
func (b *FundBridge) ToggleStatus(ctx context.Context) (domain.SessionStatus, error) {
	url := fmt.Sprintf("%s/api/toggle_status", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create toggle request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", &domain.TransportError{Op: "toggle status", Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.TransportError{Op: "toggle status", Endpoint: url, StatusCode: resp.StatusCode}
	}

	var out struct {
		Status domain.SessionStatus `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode toggle response: %w", err)
	}

	b.log.Info().Str("status", string(out.Status)).Msg("session status toggled")
	return out.Status, nil
}

// SaveSettings submits a validated settings update in one request
func (b *FundBridge) SaveSettings(ctx context.Context, update domain.SettingsUpdate) error {
	jsonData, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal settings update: %w", err)
	}

	url := fmt.Sprintf("%s/api/save_settings", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create settings request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Op: "save settings", Endpoint: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.TransportError{Op: "save settings", Endpoint: url, StatusCode: resp.StatusCode}
	}

	b.log.Info().Str("period", update.Period).Str("risk", update.Risk).Msg("settings committed to fund engine")
	return nil
}
