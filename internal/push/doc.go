// Package push subscribes to the backend's server-sent event stream and
// feeds decoded receiver snapshots into a Sink.
//
// Only "state" events are consumed. Their payload is an envelope
// {"ts": ..., "state": {...}}; the inner state is forwarded, anything that
// does not decode is logged and dropped. The channel never sends.
//
// Reconnection happens at two levels. Within a subscription the SSE client
// retries transport failures with exponential backoff between the configured
// initial and max intervals, never giving up while the context is live. If
// the subscription itself ends (the backend closed the stream), Run starts a
// new one after a doubling delay capped at 30s. Neither path produces a
// synthetic state; the UI keeps rendering the last snapshot.
package push
