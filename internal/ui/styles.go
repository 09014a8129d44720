package ui

import "fmt"

// ANSI256 color codes used by the wp renderers.
const (
	colorAccent  = 74  // blue, wave and section headers
	colorReady   = 114 // green, workable items
	colorBlocked = 167 // red, blocked items
	colorMuted   = 245 // medium gray, completed and secondary text
)

var noColor bool

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorAccent, s)
}

// RenderReady returns s in the ready (green) color.
func RenderReady(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorReady, s)
}

// RenderBlocked returns s in the blocked (red) color.
func RenderBlocked(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorBlocked, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
