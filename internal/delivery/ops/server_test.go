package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) RefreshNow(ctx context.Context) error {
	s.calls++
	return s.err
}

type stubHistory struct {
	points []*domain.EquityPoint
	since  time.Time
}

func (s *stubHistory) Insert(ctx context.Context, point *domain.EquityPoint) error { return nil }

func (s *stubHistory) ListSince(ctx context.Context, since time.Time) ([]*domain.EquityPoint, error) {
	s.since = since
	return s.points, nil
}

func (s *stubHistory) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func newTestServer(refresher *stubRefresher, history *stubHistory) (*Server, *state.Store) {
	store := state.NewStore()
	srv := New(Config{
		Port:      "0",
		Log:       zerolog.Nop(),
		Store:     store,
		Refresher: refresher,
		History:   history,
	})
	return srv, store
}

func TestHealthReportsViewReadiness(t *testing.T) {
	srv, store := newTestServer(&stubRefresher{}, &stubHistory{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["view_ready"])
	assert.NotContains(t, body, "last_synced_at")

	require.NoError(t, store.Publish(store.Epoch(), &domain.StatsSnapshot{}, nil))

	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["view_ready"])
	assert.NotEmpty(t, body["last_synced_at"])
}

func TestSyncTrigger(t *testing.T) {
	refresher := &stubRefresher{}
	srv, _ := newTestServer(refresher, &stubHistory{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sync/trigger", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, refresher.calls)
}

func TestSyncTriggerSurfacesFailure(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("engine unreachable")}
	srv, _ := newTestServer(refresher, &stubHistory{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sync/trigger", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "engine unreachable")
}

func TestRecentHistoryDefaultsToOneDay(t *testing.T) {
	history := &stubHistory{points: []*domain.EquityPoint{{HoldingsCount: 2}}}
	srv, _ := newTestServer(&stubRefresher{}, history)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/recent", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), history.since, time.Minute)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestRecentHistoryRejectsBadWindow(t *testing.T) {
	srv, _ := newTestServer(&stubRefresher{}, &stubHistory{})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/recent?hours=zero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
