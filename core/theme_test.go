package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadThemeCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.toml")
	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th != DefaultTheme() {
		t.Fatalf("theme = %+v, want defaults", th)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default theme not written: %v", err)
	}
	if !strings.Contains(string(data), "[colors]") {
		t.Fatalf("unexpected theme file:\n%s", data)
	}
}

func TestParseThemePartialOverride(t *testing.T) {
	th, err := ParseTheme([]byte("[colors]\naccent = \"#FF8800\"\n"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Accent != "#FF8800" {
		t.Fatalf("accent = %q", th.Accent)
	}
	if th.Text != DefaultTheme().Text {
		t.Fatalf("text = %q, want default", th.Text)
	}
}

func TestParseThemeRejectsBadColor(t *testing.T) {
	_, err := ParseTheme([]byte("[colors]\nerror = \"red\"\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "colors.error") {
		t.Fatalf("error should name the key: %v", err)
	}
	if _, err := ParseTheme([]byte("[colors\n")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadThemeEmptyPath(t *testing.T) {
	th, err := LoadTheme("")
	if err != nil || th != DefaultTheme() {
		t.Fatalf("LoadTheme(\"\") = %+v, %v", th, err)
	}
}
