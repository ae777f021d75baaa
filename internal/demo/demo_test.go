package demo

import (
	"bufio"
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/signet-rx/internal/receiver"
	"github.com/five82/signet-rx/internal/view"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerator_BroadcastDefaults(t *testing.T) {
	g := NewGenerator(seeded(), Broadcast, "")
	st := g.Snapshot(time.Unix(1, 0))

	assert.Equal(t, "FM_WX", st.ModeName())
	assert.Equal(t, 89.3, st.RxFrequency())
	assert.Equal(t, 162.55, st.WxFrequency())
	assert.Equal(t, "HDMI", st.Output())
	assert.Equal(t, 0.60, st.VolumeLevel())
	assert.Equal(t, "WQED-FM", st.Station())
	assert.Equal(t, "Classical music for Pittsburgh", st.RadioText())
	assert.Equal(t, "MONITORING", st.WxStatusText())
	assert.False(t, st.HasAlert())
	assert.Equal(t, view.Broadcast, view.ResolveMode(st))
}

func TestGenerator_ManualProfileResolvesManual(t *testing.T) {
	g := NewGenerator(seeded(), Manual, "")
	st := g.Snapshot(time.Unix(1, 0))

	assert.Equal(t, "MANUAL_RX", st.Profile())
	assert.Equal(t, view.Manual, view.ResolveMode(st))
	assert.Empty(t, st.Station())
}

func TestGenerator_RadioTextAlternates(t *testing.T) {
	g := NewGenerator(seeded(), Broadcast, "")

	assert.Equal(t, radioTextNowPlaying, g.Snapshot(time.Unix(120, 0)).RadioText())
	assert.Equal(t, radioTextNowPlaying, g.Snapshot(time.Unix(121, 0)).RadioText())
	assert.Equal(t, radioTextDemo, g.Snapshot(time.Unix(126, 0)).RadioText())
	assert.Equal(t, radioTextDemo, g.Snapshot(time.Unix(131, 0)).RadioText())
	assert.Equal(t, radioTextNowPlaying, g.Snapshot(time.Unix(132, 0)).RadioText())
}

func TestGenerator_SignalStaysInRange(t *testing.T) {
	g := NewGenerator(seeded(), Broadcast, "")
	for i := range 500 {
		st := g.Snapshot(time.Unix(int64(i), 0))
		require.GreaterOrEqual(t, st.RxStrength(), 1.0)
		require.LessOrEqual(t, st.RxStrength(), 9.0)
		require.GreaterOrEqual(t, st.WxStrength(), 2.0)
		require.LessOrEqual(t, st.WxStrength(), 7.0)
		if st.RxStrength() < 9 {
			require.Zero(t, st.RxOver())
		}
	}
}

func TestGenerator_AlertMode(t *testing.T) {
	g := NewGenerator(seeded(), Broadcast, "WX_ALERT")
	st := g.Snapshot(time.Date(2026, 10, 14, 9, 41, 0, 0, time.UTC))

	assert.True(t, st.HasAlert())
	assert.Equal(t, "09:41", st.AlertTime())
	assert.Equal(t, view.BlockWX, view.ResolveBlocks(st).Primary)
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	clock := time.Unix(1_700_000_000, 0).UTC()
	srv := NewServer(NewGenerator(seeded(), Broadcast, ""), Options{
		Now: func() time.Time { return clock },
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	t.Cleanup(srv.Close)
	return srv, ts
}

func TestServer_APIState(t *testing.T) {
	srv, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got receiver.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, srv.Latest().RxFrequency(), got.RxFrequency())
	assert.Equal(t, "WQED-FM", got.Station())
}

func TestServer_EventsStreamsStateEnvelopes(t *testing.T) {
	srv, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Publish until the subscriber has seen an event; it may connect after
	// the first few.
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = srv.Publish()
			}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
		if line == "" && data != "" {
			break
		}
	}
	cancel()

	assert.Equal(t, "state", event)
	st, err := receiver.DecodeEnvelope([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 89.3, st.RxFrequency())
	assert.Contains(t, data, `"ts":"2023-11-14T`)
}

func TestNewServer_DefaultsInterval(t *testing.T) {
	srv := NewServer(NewGenerator(seeded(), Broadcast, ""), Options{})
	defer srv.Close()
	assert.Equal(t, defaultInterval, srv.interval)
	assert.NotNil(t, srv.Latest())
}
