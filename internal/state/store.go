package state

import (
	"sync/atomic"
	"time"

	"github.com/five82/signet-rx/internal/receiver"
)

// Link summarizes the health of the push subscription.
type Link struct {
	Connected    bool
	LastDelivery time.Time
	Deliveries   uint64
	Rejected     uint64
	Reconnects   uint64
}

// IsStale returns true when nothing has arrived for longer than maxAge.
func (l Link) IsStale(now time.Time, maxAge time.Duration) bool {
	if l.LastDelivery.IsZero() {
		return true
	}
	return now.Sub(l.LastDelivery) > maxAge
}

// Store holds the most recently delivered receiver state. Writes replace the
// snapshot with a single pointer swap, so a reader sees either the old or the
// new snapshot and never a mix.
type Store struct {
	current atomic.Pointer[receiver.State]

	connected    atomic.Bool
	lastDelivery atomic.Int64
	deliveries   atomic.Uint64
	rejected     atomic.Uint64
	reconnects   atomic.Uint64
}

// Set replaces the held snapshot unconditionally. A nil state is ignored.
func (s *Store) Set(st *receiver.State) {
	if st == nil {
		return
	}
	s.current.Store(st)
	s.deliveries.Add(1)
	s.lastDelivery.Store(time.Now().UnixNano())
}

// Get returns the latest snapshot, or nil before the first delivery.
// Callers must treat the result as read-only.
func (s *Store) Get() *receiver.State {
	return s.current.Load()
}

// Reject records a delivery that was discarded as malformed.
func (s *Store) Reject() {
	s.rejected.Add(1)
}

// SetConnected records the transport state. A transition from connected to
// disconnected counts as one reconnect cycle.
func (s *Store) SetConnected(up bool) {
	if prev := s.connected.Swap(up); prev && !up {
		s.reconnects.Add(1)
	}
}

// Link returns a copy of the current link counters.
func (s *Store) Link() Link {
	l := Link{
		Connected:  s.connected.Load(),
		Deliveries: s.deliveries.Load(),
		Rejected:   s.rejected.Load(),
		Reconnects: s.reconnects.Load(),
	}
	if ns := s.lastDelivery.Load(); ns != 0 {
		l.LastDelivery = time.Unix(0, ns)
	}
	return l
}
