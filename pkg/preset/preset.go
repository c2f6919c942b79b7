// Package preset loads named generation configurations from preset files.
// A preset file holds a list of named option sets in TOML, YAML, or JSON;
// the format is chosen by file extension. The CLI batch and preview
// commands and the server's saved-arrow seeding all consume presets.
package preset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
)

// Preset is a named generation configuration. The option fields are
// inlined, so a preset entry reads as one flat block.
type Preset struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Description string `json:"description,omitempty" toml:"description" yaml:"description"`

	pipeline.Options `yaml:",inline"`
}

// File is the top-level structure of a preset file.
type File struct {
	Presets []Preset `json:"presets" toml:"presets" yaml:"presets"`
}

// Load reads and validates a preset file. The format is selected by the
// file extension: .toml, .yaml/.yml, or .json. Every preset must carry a
// unique non-empty name and valid options.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "read preset file %s", path)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse %s", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidPreset,
			"unsupported preset format %q (valid: .toml, .yaml, .yml, .json)", filepath.Ext(path))
	}

	if len(f.Presets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "no presets in %s", path)
	}

	seen := make(map[string]bool, len(f.Presets))
	for i := range f.Presets {
		p := &f.Presets[i]
		if p.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "preset %d has no name", i+1)
		}
		if seen[p.Name] {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true

		if err := p.Options.ValidateAndSetDefaults(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", p.Name)
		}
	}
	return f.Presets, nil
}

// Find returns the preset with the given name.
func Find(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
}

// Names returns the preset names in file order.
func Names(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
