package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/layerpaint/internal/colorparse"
)

type colorsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	c := &colorsCmd{root: r.subcommand("colors"), fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *colorsCmd) Run() error {
	for i, p := range c.palette() {
		key := " "
		if i < 9 {
			key = fmt.Sprint(i + 1)
		}
		fmt.Fprintf(c.out, "%s  %-12s %s\n", key, p.Name, colorparse.Hex(p.Color))
	}
	return nil
}
