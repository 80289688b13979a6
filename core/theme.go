package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Theme is the palette of the form UI. Values are "#rrggbb" hex strings.
type Theme struct {
	Text    string `toml:"text"`
	Muted   string `toml:"muted"`
	Border  string `toml:"border"`
	Accent  string `toml:"accent"`
	Focus   string `toml:"focus"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Surface string `toml:"surface"`
	Mantle  string `toml:"mantle"`
}

// themeFile is the top-level TOML structure.
type themeFile struct {
	Colors Theme `toml:"colors"`
}

const defaultThemeTOML = `# orderform theme
# Colors are "#rrggbb". Remove a key to fall back to the built-in value.

[colors]
text = "#cdd6f4"
muted = "#a6adc8"
border = "#585b70"
accent = "#89b4fa"
focus = "#b4befe"
success = "#a6e3a1"
error = "#f38ba8"
surface = "#313244"
mantle = "#181825"
`

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultTheme returns the built-in Catppuccin Mocha palette.
func DefaultTheme() Theme {
	return Theme{
		Text:    "#cdd6f4",
		Muted:   "#a6adc8",
		Border:  "#585b70",
		Accent:  "#89b4fa",
		Focus:   "#b4befe",
		Success: "#a6e3a1",
		Error:   "#f38ba8",
		Surface: "#313244",
		Mantle:  "#181825",
	}
}

// LoadTheme reads the theme file at path. If the file doesn't exist, it is
// created with the defaults.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return DefaultTheme(), fmt.Errorf("create theme dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultThemeTOML), 0o644); wErr != nil {
			return DefaultTheme(), fmt.Errorf("write default theme: %w", wErr)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes a theme document. Missing keys keep their defaults.
func ParseTheme(data []byte) (Theme, error) {
	file := themeFile{Colors: DefaultTheme()}
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
		return DefaultTheme(), fmt.Errorf("parse theme: %w", err)
	}
	if err := file.Colors.Validate(); err != nil {
		return DefaultTheme(), err
	}
	return file.Colors, nil
}

// Validate checks that every color is a "#rrggbb" value.
func (t Theme) Validate() error {
	for _, c := range []struct{ key, value string }{
		{"text", t.Text},
		{"muted", t.Muted},
		{"border", t.Border},
		{"accent", t.Accent},
		{"focus", t.Focus},
		{"success", t.Success},
		{"error", t.Error},
		{"surface", t.Surface},
		{"mantle", t.Mantle},
	} {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("theme colors.%s: %q is not a #rrggbb color", c.key, c.value)
		}
	}
	return nil
}
