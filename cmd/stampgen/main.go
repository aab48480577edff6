// Command stampgen renders brush stamps to image files.
//
// A stamp is either a procedural mask (ellipse, square or line) or an
// image, optionally recolored:
//
//	stampgen -kind square -size 16 -angle 30 -zoom 8 -o square.png
//	stampgen -image leaf.png -main '#2a6' -bg '#fff' -o leaf.png
//	stampgen -preset pencil -o - > pencil.png
//
// Recolored pixels keep their own alpha; the alpha of -main and -bg is
// ignored.
//
// Presets are read from stamp.yaml in the working directory, or from the
// file named by -config. Flags given on the command line override the
// preset's values.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/stamp"
)

// pipeName is the file name that selects stdin or stdout.
const pipeName = "-"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "stampgen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stampgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	stamp.SetLogger(logger)

	settings, err := resolveSettings(fs, f)
	if err != nil {
		return err
	}

	src, err := loadSource(settings.Image, stdin)
	if err != nil {
		return err
	}

	out, err := render(settings, src, f.zoom)
	if err != nil {
		return err
	}

	if err := writeOutput(f.output, out, stdout); err != nil {
		return err
	}
	logger.InfoContext(ctx, "stamp written",
		"output", f.output,
		"width", out.Bounds().Dx(),
		"height", out.Bounds().Dy())

	if f.copy {
		if err := copyToClipboard(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.InfoContext(ctx, "stamp copied to clipboard")
	}
	return nil
}
