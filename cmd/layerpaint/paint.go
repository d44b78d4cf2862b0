package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/ui"
)

type paintCmd struct {
	*root
	fs        *flag.FlagSet
	output    string
	width     int
	height    int
	thickness int
	open      bool
}

func (c *paintCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ExitOnError)
	c := &paintCmd{root: r.subcommand("paint"), fs: fs}
	fs.Usage = usageFunc(c)

	cfg := r.config
	output := cfg.Output
	if output == "" {
		output = document.DefaultFile
	}
	fs.StringVar(&c.output, "output", output, "PNG file used by save and load")
	fs.IntVar(&c.width, "width", orDefault(cfg.Width, document.DefaultWidth), "canvas width in pixels")
	fs.IntVar(&c.height, "height", orDefault(cfg.Height, document.DefaultHeight), "canvas height in pixels")
	fs.IntVar(&c.thickness, "thickness", orDefault(cfg.Thickness, document.DefaultThickness), "initial stroke thickness")
	fs.BoolVar(&c.open, "open", false, "load the output file into the base layer at startup")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.width < 1 || c.height < 1 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	return c, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func (c *paintCmd) newApp() *ui.App {
	doc := document.New(
		document.WithSize(c.width, c.height),
		document.WithThickness(c.thickness),
	)
	if c.open {
		if err := doc.Load(c.output); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "%s does not exist yet, starting blank\n", c.output)
			} else {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
	}
	return ui.New(
		ui.WithDocument(doc),
		ui.WithTheme(c.activeTheme),
		ui.WithOutput(c.output),
		ui.WithPalette(c.palette()),
		ui.WithNotifier(c.notifier),
	)
}

func (c *paintCmd) Run() error {
	c.newApp().Run()
	return nil
}
