package main

import (
	"flag"
	"fmt"

	"github.com/gogpu/stamp"
	"github.com/gogpu/stamp/internal/config"
)

// flags holds the raw command line values.
type flags struct {
	configPath string
	preset     string
	kind       string
	size       int
	angle      int
	scale      float64
	image      string
	main       string
	background string
	pattern    string
	zoom       int
	output     string
	copy       bool
	verbose    bool
}

func registerFlags(fs *flag.FlagSet) *flags {
	f := &flags{}
	fs.StringVar(&f.configPath, "config", config.DefaultFile, "presets file")
	fs.StringVar(&f.preset, "preset", "", "preset name")
	fs.StringVar(&f.kind, "kind", "ellipse", "brush kind: ellipse, square, line or image")
	fs.IntVar(&f.size, "size", 1, "brush size in pixels")
	fs.IntVar(&f.angle, "angle", 0, "rotation in degrees")
	fs.Float64Var(&f.scale, "scale", 1, "preview scale in (0, 1]")
	fs.StringVar(&f.image, "image", "", "image stamp file, or - for stdin")
	fs.StringVar(&f.main, "main", "", "main color as hex")
	fs.StringVar(&f.background, "bg", "", "background color as hex")
	fs.StringVar(&f.pattern, "pattern", "", "pattern: default, aligned-to-src, aligned-to-dst or paint-brush")
	fs.IntVar(&f.zoom, "zoom", 1, "integer magnification of the output")
	fs.StringVar(&f.output, "o", "stamp.png", "output file, or - for stdout")
	fs.BoolVar(&f.copy, "copy", false, "also copy the stamp to the clipboard")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	return f
}

// resolveSettings starts from the selected preset, or the defaults, and
// applies every flag set explicitly on the command line.
func resolveSettings(fs *flag.FlagSet, f *flags) (config.Resolved, error) {
	preset := config.Preset{}
	if f.preset != "" {
		cfg, err := config.LoadOptional(f.configPath)
		if err != nil {
			return config.Resolved{}, err
		}
		if preset, err = cfg.Lookup(f.preset); err != nil {
			return config.Resolved{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "kind":
			preset.Kind = f.kind
		case "size":
			preset.Size = f.size
		case "angle":
			preset.Angle = f.angle
		case "scale":
			preset.Scale = f.scale
		case "image":
			preset.Image = f.image
		case "main":
			preset.Main = f.main
		case "bg":
			preset.Background = f.background
		case "pattern":
			preset.Pattern = f.pattern
		}
	})

	// Flags are validated like presets, with zero meaning "unset", so an
	// explicit zero has to be rejected here.
	if f.size <= 0 && isSet(fs, "size") {
		return config.Resolved{}, fmt.Errorf("%w: size %d", config.ErrInvalidPreset, f.size)
	}
	if f.scale <= 0 && isSet(fs, "scale") {
		return config.Resolved{}, fmt.Errorf("%w: scale %g", config.ErrInvalidPreset, f.scale)
	}
	if f.zoom < 1 {
		return config.Resolved{}, fmt.Errorf("zoom must be at least 1, got %d", f.zoom)
	}

	r, err := preset.Resolve()
	if err != nil {
		return config.Resolved{}, err
	}
	stamp.Logger().Debug("settings resolved",
		"preset", r.Name,
		"kind", r.Kind,
		"size", r.Size,
		"angle", r.Angle,
		"scale", r.Scale,
		"pattern", r.Pattern)
	return r, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
