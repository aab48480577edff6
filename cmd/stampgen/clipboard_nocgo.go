//go:build !cgo && !windows

package main

import (
	"errors"
	"image"
)

var errCGODisabled = errors.New("clipboard support requires cgo")

func copyToClipboard(image.Image) error {
	return errCGODisabled
}
