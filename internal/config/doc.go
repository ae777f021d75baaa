// Package config loads the signet-rx dashboard configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/signet-rx/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - API endpoint: 127.0.0.1:8088
//   - Event stream path: /events
//   - Layout: beta
//   - Frame rate: 30 fps (clamped to 1..120)
//   - Reconnect backoff: 500ms initial, 10s max
//   - Log file: ~/.local/state/signet-rx/signet-rx.log
//   - Log level: info
//
// # TOML Format
//
//	api_bind = "127.0.0.1:8088"
//	events_path = "/events"
//	layout = "beta"
//	fps = 30
//	reconnect_initial_ms = 500
//	reconnect_max_ms = 10000
//	log_file = "~/.local/state/signet-rx/signet-rx.log"
//	log_level = "info"
//
// Every field is optional. Tilde expansion is performed for the config path
// and log_file. Unknown layout names are a parse error; everything else that
// is blank falls back to its default.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors, and unknown layouts. A missing config
// file is not an error.
//
// The Config struct is a plain value loaded once at startup. Command-line
// flags override its fields after Load returns.
package config
