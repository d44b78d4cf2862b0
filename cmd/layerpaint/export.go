package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/export"
)

// exportCmd converts an image into a one-page PDF.
type exportCmd struct {
	*root
	fs     *flag.FlagSet
	input  string
	output string
	title  string
}

func (c *exportCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	c := &exportCmd{root: r.subcommand("export"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "output PDF path (defaults to the input with a .pdf extension)")
	fs.StringVar(&c.title, "title", "", "document title (defaults to the input file name)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.input = fs.Arg(0)
	if c.output == "" {
		c.output = strings.TrimSuffix(c.input, filepath.Ext(c.input)) + ".pdf"
	}
	if c.title == "" {
		c.title = filepath.Base(c.input)
	}
	return c, nil
}

func (c *exportCmd) Run() error {
	img, err := document.DecodeFile(c.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := export.WritePDF(c.output, img, c.title); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", c.output)
	c.notifier.Export(c.output)
	return nil
}
