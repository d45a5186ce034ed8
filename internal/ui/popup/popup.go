package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// ThemeStyle returns the popup style for a channel theme.
func ThemeStyle(t *styles.Theme) Style {
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.BorderFocus,
		TitleStyle:  t.S().Accent,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a bordered box with title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
	Style   Style
}

// New creates a dialog in the theme's style.
func New(t *styles.Theme) *Dialog {
	return &Dialog{Style: ThemeStyle(t)}
}

// Box renders the dialog without positioning it.
func (p *Dialog) Box(maxWidth int) string {
	style := p.Style

	contentWidth := p.Width
	if contentWidth == 0 {
		contentWidth = max(
			maxLineWidth(p.Content),
			lipgloss.Width(p.Title),
			lipgloss.Width(p.Footer),
		)
	}
	if maxWidth > 4 {
		contentWidth = min(contentWidth, maxWidth-4)
	}

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)
	if p.Title != "" {
		lines = append(lines, render.Center(style.TitleStyle.Render(p.Title), contentWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > contentWidth {
			line = render.TruncateEllipsis(line, contentWidth)
		}
		lines = append(lines, render.Pad(line, contentWidth))
	}
	if p.Footer != "" {
		lines = append(lines, "", render.Center(style.FooterStyle.Render(p.Footer), contentWidth))
	}

	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
