package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel in the theme's colors.
func PanelStyle(t *Theme, focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(t.FgBase).
		Padding(0, 1)
}
