// Package toast renders the in-app notification box.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// MaxWidth bounds the toast box, border included.
const MaxWidth = 44

// Render draws a toast with a title and a wrapped body. The footer names
// the key that dismisses it; empty means no footer.
func Render(t *styles.Theme, title, body, footer string, width int) string {
	st := t.S()
	boxWidth := min(MaxWidth, width)
	if boxWidth < 12 {
		return ""
	}
	inner := boxWidth - 4

	wrap := lipgloss.NewStyle().Width(inner)
	content := st.Accent.Render(icons.Current().Clock+" "+title) + "\n" +
		wrap.Inherit(st.Base).Render(body)
	if footer != "" {
		content += "\n" + st.Subtle.Render(footer)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Width(boxWidth - 2).
		Render(content)
}
