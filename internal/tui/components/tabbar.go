package components

import (
	"strings"

	"budgie/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tabs defines the dashboard tabs in display order.
var Tabs = []string{"Budget", "Blocks", "History"}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	var parts []string
	for i, name := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}

	sepStyle := lipgloss.NewStyle().Background(t.Surface)
	bar := strings.Join(parts, sepStyle.Render("│"))

	fillStyle := lipgloss.NewStyle().Background(t.Surface).Width(width)
	return fillStyle.Render(bar)
}

// TabVisualWidth returns the rendered width of one tab cell, used by mouse
// hit testing. Must match RenderTabBar's padding.
func TabVisualWidth(name string) int {
	return lipgloss.Width(name) + 2
}
