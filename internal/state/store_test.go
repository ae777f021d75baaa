package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/signet-rx/internal/receiver"
)

func TestStore_GetBeforeFirstDeliveryIsNil(t *testing.T) {
	var s Store
	if got := s.Get(); got != nil {
		t.Fatalf("Get() = %#v, want nil", got)
	}
	if !s.Link().IsStale(time.Now(), time.Hour) {
		t.Fatalf("IsStale = false before any delivery, want true")
	}
}

func TestStore_SetReplacesWholesale(t *testing.T) {
	var s Store

	s.Set(&receiver.State{RxMod: receiver.Ptr("WFM"), RDSStation: receiver.Ptr("WQED-FM")})
	s.Set(&receiver.State{RxMod: receiver.Ptr("AM")})

	got := s.Get()
	if got.RxModulation() != "AM" {
		t.Fatalf("RxModulation = %q, want AM", got.RxModulation())
	}
	// No partial merge: the station from the first delivery is gone.
	if got.Station() != "" {
		t.Fatalf("Station = %q, want empty after full replacement", got.Station())
	}

	link := s.Link()
	if link.Deliveries != 2 {
		t.Fatalf("Deliveries = %d, want 2", link.Deliveries)
	}
	if link.LastDelivery.IsZero() {
		t.Fatalf("LastDelivery is zero after Set")
	}
}

func TestStore_SetNilKeepsPrevious(t *testing.T) {
	var s Store
	first := &receiver.State{Mode: receiver.Ptr("FM_WX")}
	s.Set(first)
	s.Set(nil)
	if s.Get() != first {
		t.Fatalf("Set(nil) replaced the snapshot")
	}
}

func TestStore_RejectLeavesSnapshot(t *testing.T) {
	var s Store
	first := &receiver.State{Mode: receiver.Ptr("FM_WX")}
	s.Set(first)
	s.Reject()

	if s.Get() != first {
		t.Fatalf("Reject changed the snapshot")
	}
	if got := s.Link().Rejected; got != 1 {
		t.Fatalf("Rejected = %d, want 1", got)
	}
}

func TestStore_ReconnectCounting(t *testing.T) {
	var s Store

	s.SetConnected(false)
	if got := s.Link().Reconnects; got != 0 {
		t.Fatalf("Reconnects = %d, want 0 before first connect", got)
	}
	s.SetConnected(true)
	s.SetConnected(false)
	s.SetConnected(false)
	s.SetConnected(true)
	link := s.Link()
	if link.Reconnects != 1 {
		t.Fatalf("Reconnects = %d, want 1", link.Reconnects)
	}
	if !link.Connected {
		t.Fatalf("Connected = false, want true")
	}
}

func TestStore_ConcurrentSetAndGet(t *testing.T) {
	var s Store
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			v := float64(i % 9)
			s.Set(&receiver.State{RxS: &v, RxOverDB: &v})
		}
	}()

	for i := 0; i < 500; i++ {
		if got := s.Get(); got != nil && got.RxStrength() != got.RxOver() {
			t.Fatalf("torn read: rx_s=%v rx_over_db=%v", got.RxStrength(), got.RxOver())
		}
	}
	wg.Wait()
}
