// Package state owns the dashboard's shared view model. The store has a
// single writer, the polling synchronizer; every other component reads
// copies or, in the one documented exception, records a confirmed status
// toggle. Cache generations (epochs) make stale publishes impossible after
// a teardown or a settings commit.
package state

import (
	"sync"
	"time"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// Store holds the latest combined view model
type Store struct {
	mu        sync.RWMutex
	model     domain.ViewModel
	hasModel  bool
	status    domain.SessionStatus
	hasStatus bool
	epoch     uint64
	changes   chan struct{}
}

// NewStore creates an empty store at epoch 1
func NewStore() *Store {
	return &Store{
		epoch:   1,
		changes: make(chan struct{}, 1),
	}
}

// Epoch returns the current cache generation. A sync cycle reads it
// before fetching and hands it back to Publish.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Publish installs a new view model fetched under the given epoch. It
// returns ErrStaleEpoch when the generation has moved on, which is how a
// cycle that resolved after deactivation or after a settings commit gets
// discarded instead of overwriting fresh state.
func (s *Store) Publish(epoch uint64, snapshot *domain.StatsSnapshot, trades []domain.TradeRecord) error {
	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return domain.ErrStaleEpoch
	}

	s.model = domain.ViewModel{
		Snapshot:  *snapshot,
		Trades:    trades,
		FetchedAt: time.Now(),
		Epoch:     epoch,
	}
	s.hasModel = true
	if snapshot.Settings.Status != "" {
		s.status = snapshot.Settings.Status
		s.hasStatus = true
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Current returns a copy of the latest published view model. ok is false
// while nothing has been published in the current generation.
func (s *Store) Current() (domain.ViewModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasModel {
		return domain.ViewModel{}, false
	}
	return s.model.Clone(), true
}

// Status returns the displayed session status. It reflects whichever
// write happened last: a published snapshot or a confirmed toggle.
func (s *Store) Status() (domain.SessionStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.hasStatus
}

// SetSessionStatus records a status confirmed by a toggle response. This
// is the store's only write that does not come from the synchronizer; a
// concurrent poll may overwrite it, last writer wins.
func (s *Store) SetSessionStatus(status domain.SessionStatus) {
	s.mu.Lock()
	s.status = status
	s.hasStatus = true
	s.mu.Unlock()

	s.notify()
}

// NextEpoch starts a new cache generation without dropping the cached
// model. Used on synchronizer teardown so an in-flight cycle cannot
// publish afterwards while the last good view stays readable.
func (s *Store) NextEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	return s.epoch
}

// Invalidate starts a new generation and discards every cached snapshot
// and trade. A settings commit calls this because the engine may have
// restarted the session and no cached continuity can be assumed.
func (s *Store) Invalidate() uint64 {
	s.mu.Lock()
	s.epoch++
	s.model = domain.ViewModel{}
	s.hasModel = false
	epoch := s.epoch
	s.mu.Unlock()

	s.notify()
	return epoch
}

// Changes returns a channel that coalesces store updates. Consumers use
// it as a repaint signal, then read Current.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

func (s *Store) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
