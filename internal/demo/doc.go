// Package demo is a stand-in receiver backend for running the dashboard
// without SDR hardware.
//
// Generator simulates a receiver. It emits the default broadcast station
// (89.3 MHz WFM, WQED-FM, HDMI output at 60% volume, NOAA 162.550 MHz
// monitoring), alternates the RDS text every six seconds, and random-walks
// the RX and WX S-meter readings. The Manual profile tunes a narrowband
// channel so the dashboard shows its manual controls; the WX_ALERT mode
// raises a weather alert.
//
// Server publishes a "state" event with a {ts, state} envelope to every
// /events subscriber once per interval over the r3labs SSE server, and
// serves the latest snapshot as JSON at /api/state.
package demo
