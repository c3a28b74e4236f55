package theme

import (
	"image/color"
)

// Theme defines the color palette for the editor UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the viewport
	Foreground color.RGBA // Main text color

	// HUD bar and snackbar
	HUDBackground color.RGBA
	HUDText       color.RGBA

	// Viewport backdrop behind transparent regions
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:          "Default",
		Background:    color.RGBA{220, 220, 220, 255},
		Foreground:    color.RGBA{0, 0, 0, 255},
		HUDBackground: color.RGBA{40, 40, 40, 230},
		HUDText:       color.RGBA{240, 240, 240, 255},
		CheckerLight:  color.RGBA{220, 220, 220, 255},
		CheckerDark:   color.RGBA{192, 192, 192, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:          "Dark",
		Background:    color.RGBA{30, 30, 34, 255},
		Foreground:    color.RGBA{230, 230, 230, 255},
		HUDBackground: color.RGBA{16, 16, 18, 230},
		HUDText:       color.RGBA{235, 235, 235, 255},
		CheckerLight:  color.RGBA{58, 58, 62, 255},
		CheckerDark:   color.RGBA{44, 44, 48, 255},
	}
}

// builtin maps the names Load recognises without touching the filesystem.
func builtin(name string) *Theme {
	switch name {
	case "default", "light":
		return Default()
	case "dark":
		return Dark()
	}
	return nil
}
