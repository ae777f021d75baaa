package push

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	sse "github.com/r3labs/sse/v2"
	log "github.com/sirupsen/logrus"
	backoff "gopkg.in/cenkalti/backoff.v1"

	"github.com/five82/signet-rx/internal/receiver"
)

// StateEvent is the only event name the channel consumes.
const StateEvent = "state"

const (
	defaultAPIBind    = "127.0.0.1:8088"
	defaultEventsPath = "/events"
	defaultUserAgent  = "signet-rx/0.1"

	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 10 * time.Second
)

// Sink receives decoded snapshots and link transitions. *state.Store
// implements it.
type Sink interface {
	Set(*receiver.State)
	Reject()
	SetConnected(bool)
}

// Options configure a Channel.
type Options struct {
	APIBind        string
	EventsPath     string
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Logger         log.FieldLogger
	HTTPClient     *http.Client
}

// Channel is a one-way subscription to the backend's state event stream.
type Channel struct {
	url     string
	sink    Sink
	log     log.FieldLogger
	http    *http.Client
	initial time.Duration
	maxWait time.Duration
}

// New builds a Channel that delivers into sink.
func New(sink Sink, opts Options) (*Channel, error) {
	if sink == nil {
		return nil, errors.New("push channel requires a sink")
	}
	endpoint, err := EndpointURL(opts.APIBind, opts.EventsPath)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	ch := &Channel{
		url:     endpoint,
		sink:    sink,
		log:     logger.WithField("component", "push"),
		http:    opts.HTTPClient,
		initial: opts.InitialBackoff,
		maxWait: opts.MaxBackoff,
	}
	if ch.initial <= 0 {
		ch.initial = defaultInitialBackoff
	}
	if ch.maxWait < ch.initial {
		ch.maxWait = max(defaultMaxBackoff, ch.initial)
	}
	return ch, nil
}

// URL returns the subscription endpoint.
func (c *Channel) URL() string { return c.url }

// Handle processes one raw event. Malformed state payloads are logged and
// dropped; the previously delivered snapshot stays in place.
func (c *Channel) Handle(ev *sse.Event) {
	if ev == nil {
		return
	}
	name := string(bytes.TrimSpace(ev.Event))
	if name != StateEvent {
		c.log.WithField("event", name).Debug("ignoring event")
		return
	}
	st, err := receiver.DecodeEnvelope(ev.Data)
	if err != nil {
		c.sink.Reject()
		c.log.WithError(err).Warn("bad state event")
		return
	}
	c.sink.Set(st)
}

// Subscribe consumes the stream until ctx is cancelled. Transport failures
// are retried with exponential backoff and never surface to the caller.
func (c *Channel) Subscribe(ctx context.Context) error {
	client := c.newClient(ctx)
	err := client.SubscribeRawWithContext(ctx, c.Handle)
	c.sink.SetConnected(false)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.url, err)
	}
	return nil
}

func (c *Channel) newClient(ctx context.Context) *sse.Client {
	client := sse.NewClient(c.url)
	if c.http != nil {
		client.Connection = c.http
	}
	client.Headers["User-Agent"] = defaultUserAgent

	strategy := backoff.NewExponentialBackOff()
	strategy.InitialInterval = c.initial
	strategy.MaxInterval = c.maxWait
	strategy.MaxElapsedTime = 0
	client.ReconnectStrategy = &stopOnDone{ctx: ctx, next: strategy}
	client.ReconnectNotify = func(err error, wait time.Duration) {
		c.sink.SetConnected(false)
		if ctx.Err() == nil {
			c.log.WithError(err).WithField("retry_in", wait.Round(time.Millisecond)).Warn("push channel reconnecting")
		}
	}
	client.OnConnect(func(*sse.Client) {
		c.sink.SetConnected(true)
		c.log.WithField("url", c.url).Info("push channel connected")
	})
	client.OnDisconnect(func(*sse.Client) {
		c.sink.SetConnected(false)
	})
	return client
}

// stopOnDone ends the retry loop once the subscription context is done.
type stopOnDone struct {
	ctx  context.Context
	next backoff.BackOff
}

func (s *stopOnDone) NextBackOff() time.Duration {
	if s.ctx.Err() != nil {
		return backoff.Stop
	}
	return s.next.NextBackOff()
}

func (s *stopOnDone) Reset() { s.next.Reset() }

// EndpointURL joins the API bind address and events path into an absolute
// URL, defaulting either part when blank.
func EndpointURL(apiBind, eventsPath string) (string, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	if base.Host == "" {
		return "", fmt.Errorf("parse api_bind %q: missing host", apiBind)
	}
	path := strings.TrimSpace(eventsPath)
	if path == "" {
		path = defaultEventsPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	base.Path = path
	base.RawQuery = ""
	base.Fragment = ""
	return base.String(), nil
}
