// Package ui provides ANSI color themes for terminal output.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or the output is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme. Color is disabled when noColor is true
// or the NO_COLOR convention variable is set; MSETCALC_THEME ("dark", "light"
// or "none") forces a palette; otherwise the terminal background decides
// between the dark and light palettes.
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	switch os.Getenv("MSETCALC_THEME") {
	case "dark":
		SetTheme(DarkTheme)
		return
	case "light":
		SetTheme(LightTheme)
		return
	case "none":
		SetTheme(NoColorTheme)
		return
	}
	if lipgloss.HasDarkBackground() {
		SetTheme(DarkTheme)
	} else {
		SetTheme(LightTheme)
	}
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// CurrentTheme returns a copy of the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// ColorPrimary returns the active primary accent escape code.
func ColorPrimary() string { return CurrentTheme().Primary }

// ColorSecondary returns the active secondary escape code.
func ColorSecondary() string { return CurrentTheme().Secondary }

// ColorSuccess returns the active success escape code.
func ColorSuccess() string { return CurrentTheme().Success }

// ColorWarning returns the active warning escape code.
func ColorWarning() string { return CurrentTheme().Warning }

// ColorError returns the active error escape code.
func ColorError() string { return CurrentTheme().Error }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return CurrentTheme().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return CurrentTheme().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return CurrentTheme().Reset }
