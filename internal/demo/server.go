package demo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	sse "github.com/r3labs/sse/v2"
	log "github.com/sirupsen/logrus"

	"github.com/five82/signet-rx/internal/push"
	"github.com/five82/signet-rx/internal/receiver"
)

const (
	streamID        = "state"
	defaultInterval = time.Second
	timestampLayout = "2006-01-02T15:04:05-0700"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options configure a demo Server.
type Options struct {
	Interval time.Duration
	Logger   log.FieldLogger
	Now      func() time.Time
}

// Server is a stand-in receiver backend. It publishes a state event to every
// subscriber of /events once per interval and serves the latest snapshot at
// /api/state.
type Server struct {
	gen      *Generator
	events   *sse.Server
	interval time.Duration
	latest   atomic.Pointer[receiver.State]
	log      log.FieldLogger
	now      func() time.Time
}

// NewServer builds a server around gen.
func NewServer(gen *Generator, opts Options) *Server {
	events := sse.New()
	events.AutoReplay = false
	events.CreateStream(streamID)

	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Server{
		gen:      gen,
		events:   events,
		interval: opts.Interval,
		log:      logger.WithField("component", "demo"),
		now:      opts.Now,
	}
	if s.interval <= 0 {
		s.interval = defaultInterval
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.latest.Store(gen.Snapshot(s.now()))
	return s
}

// Handler routes /events and /api/state.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /api/state", s.handleState)
	return mux
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	req := r.Clone(r.Context())
	q := req.URL.Query()
	q.Set("stream", streamID)
	req.URL.RawQuery = q.Encode()
	s.log.WithField("remote", r.RemoteAddr).Info("subscriber connected")
	s.events.ServeHTTP(w, req)
	s.log.WithField("remote", r.RemoteAddr).Info("subscriber left")
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Latest()); err != nil {
		s.log.WithError(err).Warn("write state response")
	}
}

// Latest returns the most recently published snapshot.
func (s *Server) Latest() *receiver.State {
	return s.latest.Load()
}

// Publish advances the generator and broadcasts one state event.
func (s *Server) Publish() error {
	now := s.now()
	st := s.gen.Snapshot(now)
	payload, err := receiver.EncodeEnvelope(now.Format(timestampLayout), st)
	if err != nil {
		return err
	}
	s.latest.Store(st)
	s.events.Publish(streamID, &sse.Event{
		Event: []byte(push.StateEvent),
		Data:  payload,
	})
	s.log.WithField("bytes", len(payload)).Debug("state published")
	return nil
}

// Run publishes once per interval until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Publish(); err != nil {
				s.log.WithError(err).Warn("publish state")
			}
		}
	}
}

// Close disconnects every subscriber.
func (s *Server) Close() {
	s.events.Close()
}

// ListenAndServe serves the demo backend on bind until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, bind string) error {
	httpServer := &http.Server{
		Addr:              bind,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("bind", bind).Info("demo backend listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown demo backend: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve demo backend: %w", err)
	}
}
