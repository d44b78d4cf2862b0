package theme

import (
	"image/color"
)

// Theme defines the color palette for the application UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Main text color

	// Toolbar
	ToolbarBackground color.RGBA
	ToolbarBorder     color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA // Also used for the selected tool
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Palette swatches
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA

	// Thickness slider
	SliderTrack color.RGBA
	SliderKnob  color.RGBA

	// Hover tooltip
	TooltipBackground color.RGBA
	TooltipText       color.RGBA

	// Status line
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Modal dialog and help overlay
	DialogBackground color.RGBA
	DialogBorder     color.RGBA
	DialogText       color.RGBA
	DialogError      color.RGBA
	InputBackground  color.RGBA

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{160, 160, 160, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ToolbarBorder:         color.RGBA{120, 120, 120, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		SwatchBorder:          color.RGBA{60, 60, 60, 255},
		SwatchSelected:        color.RGBA{255, 255, 255, 255},
		SliderTrack:           color.RGBA{120, 120, 120, 255},
		SliderKnob:            color.RGBA{40, 40, 40, 255},
		TooltipBackground:     color.RGBA{255, 255, 225, 255},
		TooltipText:           color.RGBA{0, 0, 0, 255},
		StatusBackground:      color.RGBA{220, 220, 220, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
		DialogBackground:      color.RGBA{240, 240, 240, 255},
		DialogBorder:          color.RGBA{0, 0, 0, 255},
		DialogText:            color.RGBA{0, 0, 0, 255},
		DialogError:           color.RGBA{190, 0, 0, 255},
		InputBackground:       color.RGBA{255, 255, 255, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
	}
}

// Fields returns the names of every colour field in declaration order.
// Config and theme files use these names as keys.
func Fields() []string {
	return []string{
		"Background", "Foreground",
		"ToolbarBackground", "ToolbarBorder",
		"ButtonBackground", "ButtonBackgroundHover", "ButtonBackgroundPress", "ButtonText", "ButtonBorder",
		"SwatchBorder", "SwatchSelected",
		"SliderTrack", "SliderKnob",
		"TooltipBackground", "TooltipText",
		"StatusBackground", "StatusText",
		"DialogBackground", "DialogBorder", "DialogText", "DialogError", "InputBackground",
		"CheckerLight", "CheckerDark",
	}
}
