package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/state"
)

type memHistory struct {
	mu        sync.Mutex
	points    []*domain.EquityPoint
	insertErr error
}

func (m *memHistory) Insert(ctx context.Context, point *domain.EquityPoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.points = append(m.points, point)
	return nil
}

func (m *memHistory) ListSince(ctx context.Context, since time.Time) ([]*domain.EquityPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.EquityPoint
	for _, p := range m.points {
		if !p.TakenAt.Before(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memHistory) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.EquityPoint
	var removed int64
	for _, p := range m.points {
		if p.TakenAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	m.points = kept
	return removed, nil
}

func (m *memHistory) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.points)
}

type memArchive struct {
	mu     sync.Mutex
	seen   map[string]domain.TradeRecord
	failID string
}

func newMemArchive() *memArchive {
	return &memArchive{seen: make(map[string]domain.TradeRecord)}
}

func (m *memArchive) Archive(ctx context.Context, trade *domain.TradeRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if trade.ID == m.failID {
		return false, errors.New("archive unavailable")
	}
	if _, ok := m.seen[trade.ID]; ok {
		return false, nil
	}
	m.seen[trade.ID] = *trade
	return true, nil
}

func (m *memArchive) CountSince(ctx context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, t := range m.seen {
		if !t.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

type guardAlert struct {
	trend  float64
	status domain.SessionStatus
}

type recordNotifier struct {
	mu          sync.Mutex
	tradeAlerts []domain.TradeRecord
	guardAlerts []guardAlert
	digests     []domain.DailyDigest
	tradeErr    error
}

func (n *recordNotifier) SendTradeAlert(trade domain.TradeRecord) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.tradeErr != nil {
		return n.tradeErr
	}
	n.tradeAlerts = append(n.tradeAlerts, trade)
	return nil
}

func (n *recordNotifier) SendGuardAlert(trendPercent float64, status domain.SessionStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.guardAlerts = append(n.guardAlerts, guardAlert{trend: trendPercent, status: status})
	return nil
}

func (n *recordNotifier) SendDigest(digest domain.DailyDigest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.digests = append(n.digests, digest)
	return nil
}

func publishSnapshot(t *testing.T, store *state.Store, snap domain.StatsSnapshot, trades []domain.TradeRecord) {
	t.Helper()
	require.NoError(t, store.Publish(store.Epoch(), &snap, trades))
}

func TestHistorySamplerRecordsCurrentView(t *testing.T) {
	store := state.NewStore()
	history := &memHistory{}
	sampler := NewHistorySampler(store, history, 0, zerolog.Nop())

	publishSnapshot(t, store, domain.StatsSnapshot{
		Balance:       f64(25000),
		TotalEquity:   f64(112500),
		Capital:       f64(100000),
		HoldingsCount: 3,
	}, nil)

	require.NoError(t, sampler.Sample(context.Background()))
	require.Equal(t, 1, history.count())

	point := history.points[0]
	require.NotNil(t, point.TotalEquity)
	assert.Equal(t, 112500.0, *point.TotalEquity)
	assert.Equal(t, 3, point.HoldingsCount)
	assert.False(t, point.TakenAt.IsZero())
}

func TestHistorySamplerSkipsUnchangedView(t *testing.T) {
	store := state.NewStore()
	history := &memHistory{}
	sampler := NewHistorySampler(store, history, 0, zerolog.Nop())

	publishSnapshot(t, store, domain.StatsSnapshot{TotalEquity: f64(100)}, nil)

	require.NoError(t, sampler.Sample(context.Background()))
	require.NoError(t, sampler.Sample(context.Background()))
	assert.Equal(t, 1, history.count(), "a stale view must not produce duplicate samples")

	time.Sleep(2 * time.Millisecond)
	publishSnapshot(t, store, domain.StatsSnapshot{TotalEquity: f64(101)}, nil)

	require.NoError(t, sampler.Sample(context.Background()))
	assert.Equal(t, 2, history.count())
}

func TestHistorySamplerSkipsEmptyStore(t *testing.T) {
	store := state.NewStore()
	history := &memHistory{}
	sampler := NewHistorySampler(store, history, time.Hour, zerolog.Nop())

	require.NoError(t, sampler.Sample(context.Background()))
	assert.Zero(t, history.count())
}

func TestHistorySamplerPrunesBeyondRetention(t *testing.T) {
	store := state.NewStore()
	history := &memHistory{points: []*domain.EquityPoint{
		{TakenAt: time.Now().Add(-48 * time.Hour)},
	}}
	sampler := NewHistorySampler(store, history, 24*time.Hour, zerolog.Nop())

	publishSnapshot(t, store, domain.StatsSnapshot{TotalEquity: f64(100)}, nil)
	require.NoError(t, sampler.Sample(context.Background()))

	require.Equal(t, 1, history.count())
	assert.WithinDuration(t, time.Now(), history.points[0].TakenAt, time.Minute)
}

func TestTradeArchiverStoresNewTradesOldestFirst(t *testing.T) {
	store := state.NewStore()
	archive := newMemArchive()
	notifier := &recordNotifier{}
	archiver := NewTradeArchiver(store, archive, notifier, zerolog.Nop())

	// engine order: newest first
	trades := []domain.TradeRecord{
		{ID: "t2", Symbol: "MSFT", Action: domain.ActionSell, Timestamp: domain.FlexibleTime{Time: time.Now()}},
		{ID: "t1", Symbol: "AAPL", Action: domain.ActionBuy, Timestamp: domain.FlexibleTime{Time: time.Now().Add(-time.Hour)}},
	}
	publishSnapshot(t, store, domain.StatsSnapshot{}, trades)

	require.NoError(t, archiver.ArchiveRecent(context.Background()))

	require.Len(t, notifier.tradeAlerts, 2)
	assert.Equal(t, "t1", notifier.tradeAlerts[0].ID, "alerts must go out in execution order")
	assert.Equal(t, "t2", notifier.tradeAlerts[1].ID)

	// a second pass over the same view is a no-op
	require.NoError(t, archiver.ArchiveRecent(context.Background()))
	assert.Len(t, notifier.tradeAlerts, 2)
}

func TestTradeArchiverContinuesPastFailures(t *testing.T) {
	store := state.NewStore()
	archive := newMemArchive()
	archive.failID = "t1"
	notifier := &recordNotifier{}
	archiver := NewTradeArchiver(store, archive, notifier, zerolog.Nop())

	trades := []domain.TradeRecord{
		{ID: "t2", Symbol: "MSFT", Action: domain.ActionSell},
		{ID: "t1", Symbol: "AAPL", Action: domain.ActionBuy},
	}
	publishSnapshot(t, store, domain.StatsSnapshot{}, trades)

	require.NoError(t, archiver.ArchiveRecent(context.Background()))
	require.Len(t, notifier.tradeAlerts, 1)
	assert.Equal(t, "t2", notifier.tradeAlerts[0].ID)

	// once the archive recovers, the skipped trade is picked up
	archive.mu.Lock()
	archive.failID = ""
	archive.mu.Unlock()

	require.NoError(t, archiver.ArchiveRecent(context.Background()))
	require.Len(t, notifier.tradeAlerts, 2)
	assert.Equal(t, "t1", notifier.tradeAlerts[1].ID)
}

func TestGuardPausesSessionOnBreach(t *testing.T) {
	fund := newFakeFund()
	fund.snapshot.TotalEquity = f64(88000)
	store := state.NewStore()
	syncer := NewSynchronizer(fund, store, time.Hour, zerolog.Nop())
	require.NoError(t, syncer.RefreshNow(context.Background()))

	notifier := &recordNotifier{}
	guard := NewGuardService(fund, store, syncer, notifier, -10, zerolog.Nop())

	require.NoError(t, guard.CheckDrawdown(context.Background()))

	assert.Equal(t, 1, fund.toggles())
	status, ok := store.Status()
	require.True(t, ok)
	assert.Equal(t, domain.StatusPaused, status)

	require.Len(t, notifier.guardAlerts, 1)
	assert.InDelta(t, -12.0, notifier.guardAlerts[0].trend, 0.001)
	assert.Equal(t, domain.StatusPaused, notifier.guardAlerts[0].status)

	// paused now, so a second check must not toggle again
	require.NoError(t, guard.CheckDrawdown(context.Background()))
	assert.Equal(t, 1, fund.toggles())
}

func TestGuardIgnoresTrendWithinLimit(t *testing.T) {
	fund := newFakeFund()
	fund.snapshot.TotalEquity = f64(95000)
	store := state.NewStore()
	syncer := NewSynchronizer(fund, store, time.Hour, zerolog.Nop())
	require.NoError(t, syncer.RefreshNow(context.Background()))

	guard := NewGuardService(fund, store, syncer, &recordNotifier{}, -10, zerolog.Nop())

	require.NoError(t, guard.CheckDrawdown(context.Background()))
	assert.Zero(t, fund.toggles())
}

func TestGuardDisabledWithoutNegativeLimit(t *testing.T) {
	fund := newFakeFund()
	fund.snapshot.TotalEquity = f64(40000)
	store := state.NewStore()
	syncer := NewSynchronizer(fund, store, time.Hour, zerolog.Nop())
	require.NoError(t, syncer.RefreshNow(context.Background()))

	guard := NewGuardService(fund, store, syncer, &recordNotifier{}, 0, zerolog.Nop())

	require.NoError(t, guard.CheckDrawdown(context.Background()))
	assert.Zero(t, fund.toggles())
}

func TestDigestComposedFromViewAndArchive(t *testing.T) {
	store := state.NewStore()
	start := time.Now().Add(-10 * 24 * time.Hour)
	publishSnapshot(t, store, domain.StatsSnapshot{
		Capital:     f64(100000),
		TotalEquity: f64(112500),
		Settings: domain.Settings{
			Status:           domain.StatusActive,
			InvestmentPeriod: "1 Month",
			StartDate:        &domain.FlexibleTime{Time: start},
		},
	}, nil)

	archive := newMemArchive()
	fresh := domain.TradeRecord{ID: "t1", Timestamp: domain.FlexibleTime{Time: time.Now().Add(-time.Hour)}}
	older := domain.TradeRecord{ID: "t2", Timestamp: domain.FlexibleTime{Time: time.Now().Add(-48 * time.Hour)}}
	_, err := archive.Archive(context.Background(), &fresh)
	require.NoError(t, err)
	_, err = archive.Archive(context.Background(), &older)
	require.NoError(t, err)

	notifier := &recordNotifier{}
	digest := NewDigestService(store, archive, notifier, zerolog.Nop())

	require.NoError(t, digest.SendDailyDigest(context.Background()))

	require.Len(t, notifier.digests, 1)
	d := notifier.digests[0]
	assert.Equal(t, domain.StatusActive, d.Status)
	require.NotNil(t, d.TotalEquity)
	assert.Equal(t, 112500.0, *d.TotalEquity)
	require.NotNil(t, d.TrendPercent)
	assert.InDelta(t, 12.5, *d.TrendPercent, 0.001)
	assert.Equal(t, 11, d.Day)
	assert.Equal(t, 30, d.TotalDays)
	assert.Equal(t, int64(1), d.TradesArchived, "only trades from the last day count")
}

func TestDigestSkippedWithoutView(t *testing.T) {
	store := state.NewStore()
	notifier := &recordNotifier{}
	digest := NewDigestService(store, newMemArchive(), notifier, zerolog.Nop())

	require.NoError(t, digest.SendDailyDigest(context.Background()))
	assert.Empty(t, notifier.digests)
}
