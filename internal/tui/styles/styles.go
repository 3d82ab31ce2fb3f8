// Package styles provides gradient and shimmer primitives for the TUI.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kilomoco/kilomoco/internal/tui/theme"
)

func defaultGradient() []string {
	t := theme.Current()
	return []string{string(t.Blue), string(t.Mauve), string(t.Pink)}
}

// Color represents an RGB color for gradient calculations.
type Color struct {
	R, G, B int
}

// ParseHex converts a hex color string to Color.
func ParseHex(hex string) Color {
	var r, g, b int
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	}
	return Color{R: r, G: g, B: b}
}

// ToHex converts Color to a hex string.
func (c Color) ToHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates between two colors.
func Lerp(c1, c2 Color, t float64) Color {
	return Color{
		R: int(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: int(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: int(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
	}
}

// GradientText applies a horizontal gradient to text.
func GradientText(text string, colors ...string) string {
	if len(colors) < 2 || len(text) == 0 {
		return text
	}

	runes := []rune(text)
	n := len(runes)

	parsedColors := make([]Color, len(colors))
	for i, c := range colors {
		parsedColors[i] = ParseHex(c)
	}

	var result strings.Builder
	segments := len(parsedColors) - 1

	for i, r := range runes {
		var pos float64
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}

		segmentPos := pos * float64(segments)
		segmentIdx := int(segmentPos)
		if segmentIdx >= segments {
			segmentIdx = segments - 1
		}
		localPos := segmentPos - float64(segmentIdx)

		c := Lerp(parsedColors[segmentIdx], parsedColors[segmentIdx+1], localPos)
		result.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", c.R, c.G, c.B, r))
	}

	return result.String()
}

// Shimmer creates an animated shimmer effect, returning the frame for the
// given tick.
func Shimmer(text string, tick int, colors ...string) string {
	if len(colors) < 2 {
		grad := defaultGradient()
		colors = append(append([]string{}, grad...), grad[0])
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return text
	}

	parsedColors := make([]Color, len(colors))
	for i, c := range colors {
		parsedColors[i] = ParseHex(c)
	}

	var result strings.Builder
	segments := len(parsedColors) - 1
	offset := float64(tick%100) / 100.0

	for i, r := range runes {
		pos := float64(i)/float64(n) + offset
		pos = pos - float64(int(pos)) // wrap around

		segmentPos := pos * float64(segments)
		segmentIdx := int(segmentPos)
		if segmentIdx >= segments {
			segmentIdx = segments - 1
		}
		localPos := segmentPos - float64(segmentIdx)

		c := Lerp(parsedColors[segmentIdx], parsedColors[segmentIdx+1], localPos)
		result.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", c.R, c.G, c.B, r))
	}

	return result.String()
}

// GradientDivider creates a horizontal divider line with a gradient.
func GradientDivider(width int, colors ...string) string {
	if width <= 0 {
		return ""
	}
	if len(colors) < 2 {
		colors = []string{"#89b4fa", "#cba6f7"}
	}
	return GradientText(strings.Repeat("─", width), colors...)
}

// Badge creates a styled badge.
func Badge(text string, bg, fg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Render(text)
}
