package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/puppybowl-tui/internal/ui/styles"
)

// Container draws a titled double border box sized to the surface.
func Container(title string, surface Surface, content string, active bool) string {
	if !surface.Valid() {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	width := surface.Width - base.GetHorizontalBorderSize()
	height := surface.Height - base.GetVerticalBorderSize()

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width).
		Height(height).
		MaxHeight(surface.Height).
		Render(content)
}
