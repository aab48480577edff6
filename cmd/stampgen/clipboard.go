//go:build cgo || windows

package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"runtime"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
	errNoDisplay  = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")
)

func initClipboard() error {
	clipboardOnce.Do(func() {
		if runtime.GOOS != "windows" && runtime.GOOS != "darwin" &&
			os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			clipboardErr = errNoDisplay
			return
		}
		clipboardErr = clipboard.Init()
	})
	return clipboardErr
}

// copyToClipboard publishes img to the system clipboard as PNG.
func copyToClipboard(img image.Image) error {
	if err := initClipboard(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
