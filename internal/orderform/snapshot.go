package orderform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Snapshot dump formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Formats lists the accepted dump formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML}
}

// Snapshot is the form as it was at a successful submit.
type Snapshot struct {
	data FormData
}

func newSnapshot(f FormData) *Snapshot {
	return &Snapshot{data: f.Clone()}
}

// Data returns a copy of the submitted form.
func (s *Snapshot) Data() FormData {
	if s == nil {
		return FormData{}
	}
	return s.data.Clone()
}

// Render dumps the snapshot as text in the given format.
func (s *Snapshot) Render(format string) (string, error) {
	if s == nil {
		return "", nil
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		out, err := json.MarshalIndent(s.data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode snapshot json: %w", err)
		}
		return string(out), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s.data); err != nil {
			return "", fmt.Errorf("encode snapshot yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode snapshot yaml: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s.data); err != nil {
			return "", fmt.Errorf("encode snapshot toml: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	}
	return "", fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}
