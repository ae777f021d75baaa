// Package ui is the Bubble Tea terminal dashboard for signet-rx.
//
// # Frame Loop
//
// A fixed-rate tick drives everything. Each frame reads the state.Store
// exactly once, advances the anim.Engine, maps the state onto a
// view.Display, resolves the view mode and block order, arranges the
// screen regions, and redraws the spectrum onto a half-block
// spectrum.Canvas. The push channel writes the store on its own goroutine;
// the frame loop never waits on it, so a slow or silent backend never
// stalls the animation.
//
// # Layouts
//
// Two layouts implement the Layout interface:
//
//   - beta (default): RX and WX blocks with S-meters and peak hold. The
//     visualization area shows the spectrum for broadcast FM and the manual
//     controls otherwise. In WX_LIVE and WX_ALERT modes the WX block is
//     drawn first.
//   - alpha: FM and WX panels above an always-on spectrum that "v" (or a
//     click on the spectrum) switches to full view.
//
// Layouts only place regions and fill block panels. The model owns all
// state, composes the screen, and uses the same regions for mouse hit
// testing, so a click always lands on what was drawn.
//
// # Overlays
//
// Clicking a block (or pressing r/w) opens a read-only detail overlay built
// by view.Details; esc, enter, x or a click outside the box closes it. "h"
// shows help and "g" shows the tail of the dashboard's own log file.
//
// # Preferences
//
// "T" cycles the theme and "L" the layout; both are saved to the prefs file
// immediately.
package ui
