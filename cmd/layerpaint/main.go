package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/layerpaint/internal/config"
	"github.com/example/layerpaint/internal/notify"
	"github.com/example/layerpaint/internal/theme"
	"github.com/example/layerpaint/internal/ui"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	configPath   string
	saveAlerts   bool
	copyAlerts   bool
	exportAlerts bool
	themeName    string
	activeTheme  *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:      program,
		notifier:     r.notifier,
		config:       r.config,
		configPath:   r.configPath,
		saveAlerts:   r.saveAlerts,
		copyAlerts:   r.copyAlerts,
		exportAlerts: r.exportAlerts,
		themeName:    r.themeName,
		activeTheme:  r.activeTheme,
	}
}

func newRoot() *root {
	r := &root{
		fs:       flag.NewFlagSet("layerpaint", flag.ExitOnError),
		program:  "layerpaint",
		notifier: notify.New(notify.LoadPreferences()),
		config:   config.New(),
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "path to the config file")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving a PNG")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", false, "show a desktop notification after exporting a PDF")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (light, dark, high-contrast or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg
	r.applyNotify()
	r.activeTheme = r.resolveTheme()

	cmdName := "paint"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var cmd runnable
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// applyNotify enables notifications from the config unless a flag set
// them explicitly.
func (r *root) applyNotify() {
	explicit := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["notify-save"] {
		r.saveAlerts = r.config.Notify.Save
	}
	if !explicit["notify-copy"] {
		r.copyAlerts = r.config.Notify.Copy
	}
	if !explicit["notify-export"] {
		r.exportAlerts = r.config.Notify.Export
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
	}
}

func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("LAYERPAINT_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Inline = r.config.Themes
	t, err := loader.Load(themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		return theme.Default()
	}
	return t
}

// palette returns the configured swatches, or the built-in ones.
func (r *root) palette() []ui.PaletteColor {
	if r.config == nil || len(r.config.Palette) == 0 {
		return ui.DefaultPalette()
	}
	p := make([]ui.PaletteColor, len(r.config.Palette))
	for i, e := range r.config.Palette {
		p[i] = ui.PaletteColor{Name: e.Name, Color: e.Color}
	}
	return p
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
