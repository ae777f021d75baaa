// Package prefs persists the choices made inside the dashboard (theme and
// layout) to ~/.config/signet-rx/prefs.toml. Reading never fails: anything
// unreadable falls back to defaults so a damaged file cannot block startup.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/signet-rx/internal/config"
)

// Prefs holds choices the user toggles from inside the dashboard.
// An empty Layout means "use the config file's layout".
type Prefs struct {
	Theme  string `toml:"theme"`
	Layout string `toml:"layout,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/signet-rx/prefs.toml"
	defaultTheme     = "Phosphor"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// DefaultTheme is the theme used when no preference is stored.
func DefaultTheme() string {
	return defaultTheme
}

// Load reads preferences from path (the default path when empty), falling
// back to defaults when the file is missing or unreadable.
func Load(path string) Prefs {
	p := Prefs{Theme: defaultTheme}

	resolved, err := resolve(path)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}
	}
	return p.normalized()
}

// normalized trims the theme and drops a layout the dashboard does not know.
func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	layout, err := config.ParseLayout(p.Layout)
	if err != nil {
		layout = ""
	}
	p.Layout = layout
	return p
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced by rename so a crash mid-write leaves the old prefs intact.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
