// Command iconforge writes the placeholder icons of the browser extension.
//
// With no arguments it writes icon16.png, icon48.png and icon128.png to the
// current directory.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/autoflow/iconforge"
	"github.com/gogpu/gg"
	"github.com/tdewolff/argp"
)

// Generate holds the command-line options for writing the icon set.
type Generate struct {
	Output     string `short:"o" default:"." desc:"Output directory"`
	Format     string `short:"f" default:"png" desc:"Output format: png, bmp, tiff or ico"`
	Background string `default:"#0066cc" desc:"Background color as hex"`
	Foreground string `default:"#ffffff" desc:"Frame and line color as hex"`
	Manifest   string `short:"m" desc:"Print the manifest icons entry with this path prefix"`
	Verbose    bool   `short:"v" desc:"Log rendering details to stderr"`
}

var stdout io.Writer = os.Stdout

func main() {
	root := argp.NewCmd(&Generate{}, "Placeholder icon generator for the AutoFlow browser extension")
	root.Parse()
}

// Run writes the icons for the default sizes and prints one line per file.
func (cmd *Generate) Run() error {
	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	iconforge.SetLogger(logger)
	gg.SetLogger(logger)

	// Resolve the encoder before drawing so a missing one writes nothing.
	format, err := iconforge.ParseFormat(cmd.Format)
	if err != nil {
		return fmt.Errorf("%w\npick a supported encoder with --format", err)
	}
	bg, err := iconforge.ParseColor(cmd.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := iconforge.ParseColor(cmd.Foreground)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}

	results, err := iconforge.CreateSet(cmd.Output, iconforge.DefaultSizes,
		iconforge.WithFormat(format),
		iconforge.WithBackground(bg),
		iconforge.WithForeground(fg),
	)
	for _, res := range results {
		fmt.Fprintln(stdout, res)
	}
	if err != nil {
		return err
	}

	if cmd.Manifest != "" {
		b, err := json.MarshalIndent(map[string]any{
			"icons": iconforge.Manifest(results, cmd.Manifest),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\n%s\n", b)
	}

	fmt.Fprintln(stdout, "\nIcons created successfully!")
	fmt.Fprintln(stdout, "You can now load the extension in Chrome.")
	return nil
}
