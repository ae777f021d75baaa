// Package spectrum draws the segmented LED analyzer onto a pixel Surface.
//
// Layout is derived from a Geometry and the surface size: bar width is the
// width left after inter-bar gaps split 32 ways, and the segment count is the
// usable height divided by the segment pitch. Both are recomputed on resize.
// A surface too small for one segment is cleared and left empty.
//
// Canvas is the only Surface implementation. The dashboard renders it as
// half-block text (two pixel rows per terminal line); the snapshot command
// writes it out as a PNG.
package spectrum
