package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strings"

	"github.com/example/layerpaint/internal/colorparse"
)

// Parse reads a theme definition from an io.Reader.
// The format is a simple key-value pair per line: Key: #RRGGBB or #RRGGBBAA
func Parse(r io.Reader) (*Theme, error) {
	t := Default() // Start with defaults
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := t.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}

	return t, scanner.Err()
}

// Set assigns one field by name. Names match case-insensitively; unknown
// names are ignored for forward compatibility.
func (t *Theme) Set(key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != reflect.TypeOf(color.RGBA{}) {
			continue
		}
		col, err := colorparse.ParseRGBA(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Get returns the colour field called name.
func (t *Theme) Get(name string) (color.RGBA, bool) {
	f := reflect.ValueOf(t).Elem().FieldByName(name)
	if !f.IsValid() {
		return color.RGBA{}, false
	}
	c, ok := f.Interface().(color.RGBA)
	return c, ok
}

// Format writes t in the format Parse reads, using sep between key and
// value.
func (t *Theme) Format(w io.Writer, sep string) error {
	if _, err := fmt.Fprintf(w, "Name%s %s\n", sep, t.Name); err != nil {
		return err
	}
	for _, name := range Fields() {
		c, _ := t.Get(name)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", name, sep, colorparse.Hex(c)); err != nil {
			return err
		}
	}
	return nil
}
