// Package theme defines the color palettes for the kilomoco TUI.
package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines a color palette for the TUI.
type Theme struct {
	// Base colors
	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color

	// Text colors
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color

	// Accent colors
	Rosewater lipgloss.Color
	Pink      lipgloss.Color
	Mauve     lipgloss.Color
	Red       lipgloss.Color
	Peach     lipgloss.Color
	Yellow    lipgloss.Color
	Green     lipgloss.Color
	Teal      lipgloss.Color
	Sky       lipgloss.Color
	Blue      lipgloss.Color
	Lavender  lipgloss.Color

	// Semantic colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// CatppuccinMocha is the flagship dark theme.
var CatppuccinMocha = Theme{
	Base:     lipgloss.Color("#1e1e2e"),
	Surface0: lipgloss.Color("#313244"),
	Surface1: lipgloss.Color("#45475a"),
	Surface2: lipgloss.Color("#585b70"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Overlay: lipgloss.Color("#6c7086"),

	Rosewater: lipgloss.Color("#f5e0dc"),
	Pink:      lipgloss.Color("#f5c2e7"),
	Mauve:     lipgloss.Color("#cba6f7"),
	Red:       lipgloss.Color("#f38ba8"),
	Peach:     lipgloss.Color("#fab387"),
	Yellow:    lipgloss.Color("#f9e2af"),
	Green:     lipgloss.Color("#a6e3a1"),
	Teal:      lipgloss.Color("#94e2d5"),
	Sky:       lipgloss.Color("#89dceb"),
	Blue:      lipgloss.Color("#89b4fa"),
	Lavender:  lipgloss.Color("#b4befe"),

	Primary: lipgloss.Color("#89b4fa"),
	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
	Info:    lipgloss.Color("#89dceb"),
}

// CatppuccinLatte is the light variant.
var CatppuccinLatte = Theme{
	Base:     lipgloss.Color("#eff1f5"),
	Surface0: lipgloss.Color("#ccd0da"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Surface2: lipgloss.Color("#acb0be"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Overlay: lipgloss.Color("#7c7f93"),

	Rosewater: lipgloss.Color("#dc8a78"),
	Pink:      lipgloss.Color("#ea76cb"),
	Mauve:     lipgloss.Color("#8839ef"),
	Red:       lipgloss.Color("#d20f39"),
	Peach:     lipgloss.Color("#fe640b"),
	Yellow:    lipgloss.Color("#df8e1d"),
	Green:     lipgloss.Color("#40a02b"),
	Teal:      lipgloss.Color("#179299"),
	Sky:       lipgloss.Color("#04a5e5"),
	Blue:      lipgloss.Color("#1e66f5"),
	Lavender:  lipgloss.Color("#7287fd"),

	Primary: lipgloss.Color("#1e66f5"),
	Success: lipgloss.Color("#40a02b"),
	Warning: lipgloss.Color("#df8e1d"),
	Error:   lipgloss.Color("#d20f39"),
	Info:    lipgloss.Color("#04a5e5"),
}

// Plain is a no-color theme. Used when NO_COLOR is set.
var Plain = Theme{}

// NoColorEnabled reports whether the NO_COLOR convention is in effect.
func NoColorEnabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// FromName resolves a theme by name. Unknown or empty names auto-detect
// from the terminal background.
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "latte", "light":
		return CatppuccinLatte
	case "mocha", "dark":
		return CatppuccinMocha
	default:
		return autoTheme()
	}
}

// Current returns the active theme, selected by KILOMOCO_THEME.
func Current() Theme {
	return FromName(os.Getenv("KILOMOCO_THEME"))
}

// detectDarkBackground inspects the terminal background. A variable for
// testability.
var detectDarkBackground = func() bool {
	output := termenv.NewOutput(os.Stdout)
	return output.HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha

		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()

		if !detectDarkBackground() {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}
