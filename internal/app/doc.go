// Package app is the composition root of the SIGNET-RX dashboard.
//
// Run loads the TOML config, merges saved preferences and flag overrides,
// opens the log file, starts the push channel against the backend event
// stream and then blocks in the terminal UI until the user quits or the
// context is cancelled:
//
//	Run()
//	  ├─> config.Load()     read ~/.config/signet-rx/config.toml
//	  ├─> prefs.Load()      theme and layout chosen in the UI
//	  ├─> OpenLog()         logrus to ~/.local/state/signet-rx/signet-rx.log
//	  ├─> push.New().Start  background SSE subscription writing state.Store
//	  └─> ui.Run()          frame loop reading state.Store (blocks)
//
// The push goroutine and the render loop share nothing but the store, so a
// slow or absent backend never stalls animation.
//
// Startup failures (bad config, unknown layout flag, unwritable log file,
// invalid endpoint) are returned from Run. Everything after startup is logged
// and retried.
//
// RenderSnapshot and WriteSnapshot render the demo spectrum offline with the
// pixel geometry, for the snapshot command and golden comparisons.
package app
