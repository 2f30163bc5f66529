package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/skosovsky/templatest"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest indicates a malformed manifest document.
var ErrInvalidManifest = errors.New("manifest: manifest file is malformed")

// fileManifest is the YAML document shape.
type fileManifest struct {
	Group     string         `yaml:"group"`
	Templates []fileTemplate `yaml:"templates"`
}

type fileTemplate struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Expected string `yaml:"expected"`
}

// ParseBytes parses a YAML manifest and returns its templates in document order.
func ParseBytes(data []byte) ([]templatest.Template, error) {
	var m fileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return buildTemplates(&m)
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) ([]templatest.Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- fixture path chosen by the test author
	if err != nil {
		return nil, fmt.Errorf("manifest: read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseFS reads and parses a manifest from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) ([]templatest.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read fs: %w", err)
	}
	return ParseBytes(data)
}

func buildTemplates(m *fileManifest) ([]templatest.Template, error) {
	if len(m.Templates) == 0 {
		return nil, fmt.Errorf("%w: missing templates", ErrInvalidManifest)
	}
	seen := make(map[string]bool, len(m.Templates))
	out := make([]templatest.Template, 0, len(m.Templates))
	for i, t := range m.Templates {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: template %d: missing name", ErrInvalidManifest, i)
		}
		name := t.Name
		if m.Group != "" {
			name = m.Group + "-" + name
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: template %d: duplicate name %q", ErrInvalidManifest, i, name)
		}
		seen[name] = true
		out = append(out, templatest.Template{Name: name, Template: t.Template, Expected: t.Expected})
	}
	return out, nil
}
