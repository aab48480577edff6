package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/term"
)

var (
	errTerminalInput  = errors.New("refusing to read an image from a terminal")
	errTerminalOutput = errors.New("refusing to write an image to a terminal")
)

// loadSource decodes the image stamp source. An empty path means a
// procedural brush and returns nil.
func loadSource(path string, stdin io.Reader) (image.Image, error) {
	switch path {
	case "":
		return nil, nil
	case pipeName:
		if isTerminal(stdin) {
			return nil, errTerminalInput
		}
		img, err := imaging.Decode(stdin)
		if err != nil {
			return nil, fmt.Errorf("decode stdin: %w", err)
		}
		return img, nil
	default:
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		return img, nil
	}
}

// writeOutput saves img to path, with the format taken from its
// extension, or PNG encodes it to stdout.
func writeOutput(path string, img image.Image, stdout io.Writer) error {
	if path != pipeName {
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	}

	if isTerminal(stdout) {
		return errTerminalOutput
	}
	if err := imaging.Encode(stdout, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode stdout: %w", err)
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
