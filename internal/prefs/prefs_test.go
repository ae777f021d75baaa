package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		body       string // empty means no file
		wantTheme  string
		wantLayout string
	}{
		{"missing file", "", defaultTheme, ""},
		{"theme and layout", "theme = \"Amber\"\nlayout = \" ALPHA \"\n", "Amber", "alpha"},
		{"blank theme", "theme = \"  \"\n", defaultTheme, ""},
		{"unknown layout dropped", "theme = \"Ice\"\nlayout = \"gamma\"\n", "Ice", ""},
		{"invalid toml", "not valid toml {{{\n", defaultTheme, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if tt.body != "" {
				writePrefs(t, path, tt.body)
			}
			p := Load(path)
			if p.Theme != tt.wantTheme || p.Layout != tt.wantLayout {
				t.Fatalf("Load = %+v, want theme %q layout %q", p, tt.wantTheme, tt.wantLayout)
			}
		})
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writePrefs(t, filepath.Join(home, ".config", "signet-rx", "prefs.toml"), "theme = \"Ice\"\n")

	p := Load("")
	if p.Theme != "Ice" {
		t.Fatalf("Theme = %q, want Ice", p.Theme)
	}
}

func TestSave_RoundTripsAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	path := filepath.Join(dir, "prefs.toml")

	want := Prefs{Theme: "Ice", Layout: "beta"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := Save(path, Prefs{Theme: "Amber", Layout: "alpha"}); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	got := Load(path)
	if got != (Prefs{Theme: "Amber", Layout: "alpha"}) {
		t.Fatalf("Load = %+v", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want only prefs.toml", len(entries))
	}
}

func TestSave_OmitsUnknownLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Ice", Layout: "gamma"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "layout") {
		t.Fatalf("file = %q, want no layout key", data)
	}
}
