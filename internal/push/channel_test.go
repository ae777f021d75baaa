package push

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sse "github.com/r3labs/sse/v2"
	log "github.com/sirupsen/logrus"

	"github.com/five82/signet-rx/internal/receiver"
	"github.com/five82/signet-rx/internal/state"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

type recordingSink struct {
	mu       sync.Mutex
	states   []*receiver.State
	rejected int
	links    []bool
}

func (r *recordingSink) Set(s *receiver.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recordingSink) Reject() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *recordingSink) SetConnected(up bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, up)
}

func TestEndpointURL_DefaultsAndNormalizes(t *testing.T) {
	got, err := EndpointURL("", "")
	if err != nil {
		t.Fatalf("EndpointURL returned error: %v", err)
	}
	if got != "http://127.0.0.1:8088/events" {
		t.Fatalf("EndpointURL = %q, want default endpoint", got)
	}

	got, err = EndpointURL("https://radio.local:9000/ignored?x=1#frag", "stream")
	if err != nil {
		t.Fatalf("EndpointURL returned error: %v", err)
	}
	if got != "https://radio.local:9000/stream" {
		t.Fatalf("EndpointURL = %q, want https://radio.local:9000/stream", got)
	}

	if _, err := EndpointURL("http://", ""); err == nil {
		t.Fatalf("EndpointURL with no host returned nil error")
	}
}

func TestNew_RequiresSink(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Fatalf("New(nil) returned nil error")
	}
}

func TestHandle_ForwardsStateAndDropsMalformed(t *testing.T) {
	sink := &recordingSink{}
	ch, err := New(sink, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ch.Handle(&sse.Event{Event: []byte("state"), Data: []byte(`{"ts":"x","state":{"rx_mod":"WFM"}}`)})
	ch.Handle(&sse.Event{Event: []byte("state"), Data: []byte(`{broken`)})
	ch.Handle(&sse.Event{Event: []byte("ping"), Data: []byte(`{"state":{"rx_mod":"AM"}}`)})
	ch.Handle(nil)

	if len(sink.states) != 1 {
		t.Fatalf("Set called %d times, want 1", len(sink.states))
	}
	if got := sink.states[0].RxModulation(); got != "WFM" {
		t.Fatalf("delivered rx_mod = %q, want WFM", got)
	}
	if sink.rejected != 1 {
		t.Fatalf("rejected = %d, want 1", sink.rejected)
	}
}

func TestHandle_MalformedKeepsStoreContents(t *testing.T) {
	store := &state.Store{}
	ch, err := New(store, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ch.Handle(&sse.Event{Event: []byte("state"), Data: []byte(`{"state":{"rds_station":"WQED-FM"}}`)})
	before := store.Get()
	ch.Handle(&sse.Event{Event: []byte("state"), Data: []byte(`{"ts":"x"}`)})

	if store.Get() != before {
		t.Fatalf("malformed delivery replaced the stored snapshot")
	}
	if store.Get().Station() != "WQED-FM" {
		t.Fatalf("Station = %q, want WQED-FM", store.Get().Station())
	}
}

func TestHandle_WrongFieldTypeKeepsSnapshot(t *testing.T) {
	store := &state.Store{}
	ch, err := New(store, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ch.Handle(&sse.Event{Event: []byte("state"), Data: []byte(`{"state":{"rx_mod":"WFM","rx_profile":"WFM_BROADCAST","stereo":1}}`)})

	got := store.Get()
	if got == nil {
		t.Fatalf("snapshot with one mistyped field was dropped")
	}
	if got.RxModulation() != "WFM" || got.Profile() != "WFM_BROADCAST" {
		t.Fatalf("mod/profile = %q/%q, want WFM/WFM_BROADCAST", got.RxModulation(), got.Profile())
	}
	if got.IsStereo() {
		t.Fatalf("IsStereo = true, want default false for a numeric stereo field")
	}
	if link := store.Link(); link.Rejected != 0 {
		t.Fatalf("Rejected = %d, want 0", link.Rejected)
	}
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second},
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestStopOnDone_StopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &stopOnDone{ctx: ctx, next: constantBackOff(time.Millisecond)}
	if got := s.NextBackOff(); got != time.Millisecond {
		t.Fatalf("NextBackOff = %v, want 1ms", got)
	}
	cancel()
	if got := s.NextBackOff(); got >= 0 {
		t.Fatalf("NextBackOff after cancel = %v, want stop", got)
	}
}

type constantBackOff time.Duration

func (c constantBackOff) NextBackOff() time.Duration { return time.Duration(c) }
func (c constantBackOff) Reset() {}

func writeEvent(w http.ResponseWriter, name, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSubscribe_DeliversStateEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		writeEvent(w, "state", `{not-json`)
		writeEvent(w, "hello", `{"state":{"rx_mod":"AM"}}`)
		writeEvent(w, "state", `{"ts":"now","state":{"rx_mod":"WFM","rx_profile":"WFM_BROADCAST","rx_s":7,"rx_over_db":10}}`)
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	store := &state.Store{}
	ch, err := New(store, Options{APIBind: server.URL, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch.Start(ctx)

	waitFor(t, "state delivery", func() bool { return store.Get() != nil })

	got := store.Get()
	if got.RxModulation() != "WFM" || got.RxStrength() != 7 {
		t.Fatalf("delivered state = %+v, want WFM S7", got)
	}
	link := store.Link()
	if link.Rejected != 1 {
		t.Fatalf("Rejected = %d, want 1", link.Rejected)
	}
	if link.Deliveries != 1 {
		t.Fatalf("Deliveries = %d, want 1", link.Deliveries)
	}
}

func TestRun_ReconnectsAfterStreamEnds(t *testing.T) {
	var connections atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := connections.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		writeEvent(w, "state", fmt.Sprintf(`{"state":{"rx_s":%d}}`, n))
		// Returning closes the stream; the channel must come back on its own.
	}))
	t.Cleanup(server.Close)

	store := &state.Store{}
	ch, err := New(store, Options{
		APIBind:        server.URL,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     20 * time.Millisecond,
		Logger:         quietLogger(),
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch.Start(ctx)

	waitFor(t, "second connection", func() bool { return connections.Load() >= 2 })
	waitFor(t, "state from a later connection", func() bool {
		s := store.Get()
		return s != nil && s.RxStrength() >= 2
	})
}
