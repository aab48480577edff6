// Package config loads brush presets for the stampgen command.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/stamp"
	"github.com/gogpu/stamp/pixbuf"
)

// DefaultFile is the presets file looked up when none is given.
const DefaultFile = "stamp.yaml"

var (
	// ErrPresetNotFound is returned by Lookup for unknown preset names.
	ErrPresetNotFound = errors.New("config: preset not found")

	// ErrInvalidPreset is returned for presets that fail validation.
	ErrInvalidPreset = errors.New("config: invalid preset")
)

// Config represents a presets file.
//
//	presets:
//	  - name: pencil
//	    kind: square
//	    size: 3
//	  - name: stencil
//	    image: leaf.png
//	    main: "#2a6"
//	    background: "#fff0"
type Config struct {
	Presets []Preset `yaml:"presets"`
}

// Preset describes one brush as written in the file. Zero values mean
// "not set".
type Preset struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind,omitempty"`
	Size       int     `yaml:"size,omitempty"`
	Angle      int     `yaml:"angle,omitempty"`
	Scale      float64 `yaml:"scale,omitempty"`
	Image      string  `yaml:"image,omitempty"`
	Main       string  `yaml:"main,omitempty"`
	Background string  `yaml:"background,omitempty"`
	Pattern    string  `yaml:"pattern,omitempty"`
}

// Resolved is a validated preset with defaults applied.
type Resolved struct {
	Name       string
	Kind       stamp.Kind
	Size       int
	Angle      int
	Scale      float64
	Image      string
	Main       *color.NRGBA
	Background *color.NRGBA
	Pattern    stamp.Pattern
}

// Default returns the settings used when no preset is selected.
func Default() Resolved {
	return Resolved{Kind: stamp.KindEllipse, Size: 1, Scale: 1}
}

// LoadOptional reads the presets file at path. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a presets document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Presets))
	for i, p := range cfg.Presets {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: preset %d has no name", ErrInvalidPreset, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate preset %q", ErrInvalidPreset, name)
		}
		seen[name] = true
		if _, err := p.Resolve(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Lookup returns the preset called name.
func (c *Config) Lookup(name string) (Preset, error) {
	for _, p := range c.Presets {
		if strings.TrimSpace(p.Name) == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Resolve validates p and fills unset fields from Default. A preset with
// an image is always an image stamp.
func (p Preset) Resolve() (Resolved, error) {
	r := Default()
	r.Name = strings.TrimSpace(p.Name)
	r.Angle = p.Angle
	r.Image = p.Image

	if p.Kind != "" {
		k, err := stamp.ParseKind(p.Kind)
		if err != nil {
			return Resolved{}, fmt.Errorf("%w %q: %w", ErrInvalidPreset, r.Name, err)
		}
		r.Kind = k
	}
	if p.Image != "" {
		r.Kind = stamp.KindImage
	}
	if r.Kind == stamp.KindImage && p.Image == "" {
		return Resolved{}, fmt.Errorf("%w %q: image kind needs an image", ErrInvalidPreset, r.Name)
	}

	switch {
	case p.Size < 0:
		return Resolved{}, fmt.Errorf("%w %q: size %d", ErrInvalidPreset, r.Name, p.Size)
	case p.Size > 0:
		r.Size = p.Size
	}

	switch {
	case p.Scale < 0 || p.Scale > 1:
		return Resolved{}, fmt.Errorf("%w %q: scale %g outside (0, 1]", ErrInvalidPreset, r.Name, p.Scale)
	case p.Scale > 0:
		r.Scale = p.Scale
	}

	var err error
	if r.Main, err = parseColor(p.Main); err != nil {
		return Resolved{}, fmt.Errorf("%w %q: main: %w", ErrInvalidPreset, r.Name, err)
	}
	if r.Background, err = parseColor(p.Background); err != nil {
		return Resolved{}, fmt.Errorf("%w %q: background: %w", ErrInvalidPreset, r.Name, err)
	}
	if r.Pattern, err = stamp.ParsePattern(p.Pattern); err != nil {
		return Resolved{}, fmt.Errorf("%w %q: %w", ErrInvalidPreset, r.Name, err)
	}

	return r, nil
}

func parseColor(s string) (*color.NRGBA, error) {
	if s == "" {
		return nil, nil
	}
	c, err := pixbuf.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
