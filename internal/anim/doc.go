// Package anim holds the layout-independent numeric core of the dashboard:
// the demo spectrum source, exponential smoothing with peak hold, and the
// S-meter fraction mapping. Every layout renders from the same Engine.
package anim
