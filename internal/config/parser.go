package config

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/layerpaint/internal/colorparse"
	"github.com/example/layerpaint/internal/theme"
)

// ErrUnknownColor is returned for a palette value that is neither a hex
// colour nor an SVG colour name.
var ErrUnknownColor = errors.New("unknown color")

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if themeName, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var key, value string
		var ok bool
		if strings.Contains(line, "=") {
			key, value, ok = strings.Cut(line, "=")
		} else {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentTheme != nil:
			if err := currentTheme.Set(key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "palette":
			entry, err := parsePaletteEntry(key, value)
			if err != nil {
				return nil, fmt.Errorf("error in section [palette]: %w", err)
			}
			cfg.Palette = append(cfg.Palette, entry)
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "output":
		cfg.Output = value
	case "width", "height", "thickness":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid positive integer for key %s: %q", key, value)
		}
		switch strings.ToLower(key) {
		case "width":
			cfg.Width = n
		case "height":
			cfg.Height = n
		default:
			cfg.Thickness = n
		}
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	case "export":
		n.Export = b
	}
	return nil
}

func parsePaletteEntry(name, value string) (PaletteEntry, error) {
	if strings.HasPrefix(value, "#") {
		c, err := colorparse.ParseRGBA(value)
		if err != nil {
			return PaletteEntry{}, fmt.Errorf("invalid color for %s: %w", name, err)
		}
		return PaletteEntry{Name: name, Color: c}, nil
	}
	c, err := LookupColor(value)
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("palette entry %s: %w", name, err)
	}
	return PaletteEntry{Name: name, Color: c}, nil
}

// LookupColor resolves an SVG colour name such as "cornflowerblue".
func LookupColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
