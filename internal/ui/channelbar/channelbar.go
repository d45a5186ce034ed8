// Package channelbar renders the channel switcher tab strip.
package channelbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Height is the fixed height of the channel bar (single line).
const Height = 1

// maxKeyed is the number of channels reachable with F-keys.
const maxKeyed = 9

// Render returns the channel bar for the given width. The active channel is
// highlighted with the theme's active chip; the others show their F-key.
// Narrow terminals drop the F-key hints, then truncate.
func Render(t *styles.Theme, channels []channel.Channel, activeID string, width int) string {
	line, _ := arrange(t, channels, activeID, width)
	return line
}

// At returns the index of the channel whose tab covers column x, or -1.
func At(t *styles.Theme, channels []channel.Channel, activeID string, width, x int) int {
	if x < 0 || x >= width {
		return -1
	}
	_, tabs := arrange(t, channels, activeID, width)
	for i, r := range tabs {
		if x >= r.start && x < r.end {
			return i
		}
	}
	return -1
}

// tab is the column range [start, end) of one channel on the bar.
type tab struct {
	start, end int
}

func arrange(t *styles.Theme, channels []channel.Channel, activeID string, width int) (string, []tab) {
	if width < 10 || len(channels) == 0 {
		return "", nil
	}

	for _, withKeys := range []bool{true, false} {
		line, tabs := build(t, channels, activeID, withKeys)
		if w := lipgloss.Width(line); w <= width {
			left := (width - w) / 2
			for i := range tabs {
				tabs[i].start += left
				tabs[i].end += left
			}
			return render.Center(line, width), tabs
		}
	}
	line, tabs := build(t, channels, activeID, false)
	return ansi.Truncate(line, width, "…"), tabs
}

func build(t *styles.Theme, channels []channel.Channel, activeID string, withKeys bool) (string, []tab) {
	st := t.S()
	separator := st.Subtle.Render(" │ ")
	parts := make([]string, 0, len(channels)+1)
	parts = append(parts, st.Accent.Render(icons.Current().Music))

	for i, ch := range channels {
		name := render.Title(ch.Name)
		var part string
		if ch.ID == activeID {
			part = st.Active.Render(name)
		} else {
			part = st.Chip.Render(name)
		}
		if withKeys && i < maxKeyed {
			part = st.Subtle.Render(fmt.Sprintf("F%d", i+1)) + part
		}
		parts = append(parts, part)
	}

	tabs := make([]tab, 0, len(channels))
	col := lipgloss.Width(parts[0]) + 1
	for _, part := range parts[1:] {
		w := lipgloss.Width(part)
		tabs = append(tabs, tab{start: col, end: col + w})
		col += w + lipgloss.Width(separator)
	}
	return parts[0] + " " + strings.Join(parts[1:], separator), tabs
}
