// Package ui holds the terminal presentation helpers shared by tt commands:
// TTY detection, the color theme and the progress spinner.
package ui

import "os"

// Theme controls how UI components render.
type Theme struct {
	// NoColor disables styling and animation.
	NoColor bool
	Colors  ThemeColors
}

// ThemeColors lists the hex colors used by UI components.
type ThemeColors struct {
	Primary string
}

// NewTheme returns the tt theme. NO_COLOR in the environment turns
// styling off (https://no-color.org).
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors:  ThemeColors{Primary: "#4FC08D"},
	}
}
