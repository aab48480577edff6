package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/gogpu/stamp"
	"github.com/gogpu/stamp/internal/config"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func nrgbaAt(t *testing.T, img image.Image, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderSquare(t *testing.T) {
	r := config.Default()
	r.Kind = stamp.KindSquare
	r.Size = 4

	out, err := render(r, nil, 2)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if got := out.Bounds().Size(); got != image.Pt(8, 8) {
		t.Fatalf("size = %v, want (8,8)", got)
	}
	for y := range 8 {
		for x := range 8 {
			if c := nrgbaAt(t, out, x, y); c != defaultInk {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, defaultInk)
			}
		}
	}
}

func TestRenderEllipseColors(t *testing.T) {
	r := config.Default()
	r.Size = 9
	r.Main = &red
	r.Background = &white

	out, err := render(r, nil, 1)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if c := nrgbaAt(t, out, 4, 4); c != red {
		t.Errorf("center = %v, want %v", c, red)
	}
	if c := nrgbaAt(t, out, 0, 0); c != white {
		t.Errorf("corner = %v, want %v", c, white)
	}
}

func TestRenderScaled(t *testing.T) {
	r := config.Default()
	r.Kind = stamp.KindSquare
	r.Size = 10
	r.Scale = 0.5

	out, err := render(r, nil, 1)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if got := out.Bounds().Dx(); got != 5 {
		t.Errorf("width = %d, want 5", got)
	}
}

// twoTone is a 4×4 opaque image: a white border around a 2×2 blue core.
func twoTone() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			c := white
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				c = blue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderImageRecolor(t *testing.T) {
	r := config.Default()
	r.Kind = stamp.KindImage
	r.Image = "inline"
	r.Main = &red

	out, err := render(r, twoTone(), 1)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if c := nrgbaAt(t, out, 1, 1); c != red {
		t.Errorf("core = %v, want %v", c, red)
	}
	if c := nrgbaAt(t, out, 0, 0); c != white {
		t.Errorf("border = %v, want %v", c, white)
	}
}

func TestRenderImageRecolorBothRoles(t *testing.T) {
	r := config.Default()
	r.Kind = stamp.KindImage
	r.Image = "inline"
	r.Main = &red
	r.Background = &blue

	out, err := render(r, twoTone(), 1)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if c := nrgbaAt(t, out, 1, 1); c != red {
		t.Errorf("core = %v, want %v", c, red)
	}
	if c := nrgbaAt(t, out, 0, 0); c != blue {
		t.Errorf("border = %v, want %v", c, blue)
	}
}

func TestRenderImageMissing(t *testing.T) {
	r := config.Default()
	r.Kind = stamp.KindImage

	if _, err := render(r, nil, 1); !errors.Is(err, errEmptyStamp) {
		t.Errorf("render() error = %v, want %v", err, errEmptyStamp)
	}
}

func TestResolveSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	doc := "presets:\n  - name: nib\n    kind: line\n    size: 9\n    angle: 45\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		args      []string
		wantKind  stamp.Kind
		wantSize  int
		wantAngle int
		wantErr   error
	}{
		{"defaults", nil, stamp.KindEllipse, 1, 0, nil},
		{"flags only", []string{"-kind", "square", "-size", "6"}, stamp.KindSquare, 6, 0, nil},
		{"preset", []string{"-config", path, "-preset", "nib"}, stamp.KindLine, 9, 45, nil},
		{"preset override", []string{"-config", path, "-preset", "nib", "-angle", "90"}, stamp.KindLine, 9, 90, nil},
		{"missing preset", []string{"-config", path, "-preset", "nope"}, 0, 0, 0, config.ErrPresetNotFound},
		{"zero size", []string{"-size", "0"}, 0, 0, 0, config.ErrInvalidPreset},
		{"bad kind", []string{"-kind", "star"}, 0, 0, 0, stamp.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			f := registerFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			r, err := resolveSettings(fs, f)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveSettings() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveSettings() error = %v", err)
			}
			if r.Kind != tt.wantKind || r.Size != tt.wantSize || r.Angle != tt.wantAngle {
				t.Errorf("resolveSettings() = %v/%d/%d, want %v/%d/%d",
					r.Kind, r.Size, r.Angle, tt.wantKind, tt.wantSize, tt.wantAngle)
			}
		})
	}
}

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-kind", "square", "-size", "3", "-zoom", "4", "-o", "-"},
		nil, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v (stderr: %s)", err, stderr.String())
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(12, 12) {
		t.Errorf("size = %v, want (12,12)", got)
	}
}

func TestRunImageFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	if err := imaging.Save(twoTone(), in); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-image", in, "-bg", "#00ff00", "-o", out},
		nil, io.Discard, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v (stderr: %s)", err, stderr.String())
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("imaging.Open() error = %v", err)
	}
	if c := nrgbaAt(t, img, 0, 0); c != (color.NRGBA{G: 0xff, A: 0xff}) {
		t.Errorf("border = %v, want green", c)
	}
	if c := nrgbaAt(t, img, 1, 1); c != blue {
		t.Errorf("core = %v, want %v", c, blue)
	}
}

func TestLoadSourceStdin(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, twoTone()); err != nil {
		t.Fatal(err)
	}

	img, err := loadSource(pipeName, &buf)
	if err != nil {
		t.Fatalf("loadSource() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(4, 4) {
		t.Errorf("size = %v, want (4,4)", got)
	}

	if img, err := loadSource("", nil); img != nil || err != nil {
		t.Errorf("loadSource(\"\") = %v, %v, want nil, nil", img, err)
	}
}

func TestRunRejectsArgs(t *testing.T) {
	err := run(context.Background(), []string{"extra"}, nil, io.Discard, io.Discard)
	if err == nil {
		t.Error("run() error = nil, want error")
	}
}
