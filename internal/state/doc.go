// Package state holds the single-slot store that connects the push
// subscription to the render loop.
//
// # Overview
//
// The push goroutine is the only writer; the Bubble Tea update loop is the
// only reader. They never call into each other. The store is the whole
// contract between them:
//
//	Producer (push):               Consumer (render tick):
//	┌────────────────┐            ┌──────────────────┐
//	│ decode event   │            │ frame start      │
//	│      ↓         │            │      ↓           │
//	│ store.Set()    │───────────→│ store.Get()      │
//	│      ↓         │  (atomic)  │      ↓           │
//	│ next event...  │            │ step + render    │
//	└────────────────┘            └──────────────────┘
//
// # Update Semantics
//
// Set replaces the snapshot wholesale; there is no diffing, merging, or
// history. A malformed delivery never reaches Set, so the previous snapshot
// stays visible (Reject only bumps a counter). Get returns nil until the first
// delivery and renderers substitute defaults.
//
// # Link status
//
// Alongside the snapshot the store keeps a few counters describing the
// subscription (connected, deliveries, rejected payloads, reconnects). The
// header uses them to show a live / reconnecting indicator. They are
// independent atomics and may be momentarily inconsistent with each other,
// which is fine for a status lamp.
//
// # Testing Considerations
//
// The zero value is ready to use:
//
//	store := &state.Store{}
//
// Snapshots handed out by Get are shared, not copied. Treat them as
// immutable.
package state
