package session

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory. Sessions idle for longer than ttl are
// dropped by a sweep that runs once activity settles down, and by
// SweepEvery on an otherwise idle server.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	debounce func(f func())
	now      func() time.Time
}

func NewStore(ttl time.Duration, sweepDelay time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		debounce: debounce.New(sweepDelay),
		now:      time.Now,
	}
}

func (st *Store) Add(s *Session) {
	st.mu.Lock()
	s.lastUsed = st.now()
	st.sessions[s.id] = s
	st.mu.Unlock()
	st.debounce(st.sweepLater)
}

// Do runs f with exclusive access to the session.
func (st *Store) Do(id string, f func(s *Session) error) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if !ok {
		st.mu.Unlock()
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	s.lastUsed = st.now()
	err := f(s)
	st.mu.Unlock()

	st.debounce(st.sweepLater)
	return err
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) sweepLater() {
	st.Sweep()
}

// Sweep drops expired sessions and reports how many went.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.ttl)
	removed := 0
	for id, s := range st.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(st.sessions),
		}).Info("swept expired sessions")
	}
	return removed
}

// SweepEvery sweeps on a fixed interval until ctx is done. A non-positive
// interval disables it.
func (st *Store) SweepEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
