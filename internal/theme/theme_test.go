package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Test\n# comment\nbackground: #112233\nSliderKnob: #01020304\nUnknown: #FFFFFF\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Test" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 255}) {
		t.Errorf("background = %v", th.Background)
	}
	if th.SliderKnob != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("slider knob = %v", th.SliderKnob)
	}
	if th.Foreground != Default().Foreground {
		t.Errorf("unset field lost its default: %v", th.Foreground)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Fatal("expected an error for a colour without #")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := Default()
	src.Name = "Round"
	src.DialogError = color.RGBA{9, 8, 7, 128}
	var buf bytes.Buffer
	if err := src.Format(&buf, ":"); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *src {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, src)
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	names := EmbeddedNames()
	if len(names) == 0 {
		t.Fatal("no embedded themes")
	}
	l := &Loader{}
	for _, n := range names {
		if _, err := l.Load(n); err != nil {
			t.Errorf("load %s: %v", n, err)
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	inline := Default()
	inline.Name = "Inline"
	l := &Loader{ConfigDir: dir, Inline: map[string]*Theme{"dark": inline}}

	th, err := l.Load("mine")
	if err != nil || th.Name != "Mine" {
		t.Fatalf("config dir theme: %v %v", th, err)
	}
	th, err = l.Load("dark")
	if err != nil || th.Name != "Inline" {
		t.Fatalf("inline theme should win over embedded: %v %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	th, err = l.Load("")
	if err != nil || th.Name != "Default" {
		t.Fatalf("empty name: %v %v", th, err)
	}
}
