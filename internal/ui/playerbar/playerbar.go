// Package playerbar renders the audio player panel.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/playback"
	"github.com/radiotedu/radiotedu-tui/internal/ui"
	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Channel     string
	Playing     bool
	Loading     bool
	StreamError bool
	ActiveSteps int
	Title       string
	Received    int64
}

// NewState snapshots the controller for the channel being shown.
func NewState(c *playback.Controller, ch channel.Channel) State {
	info := c.Info()
	title := c.Title()
	if title == "" {
		title = info.Title
	}
	return State{
		Channel:     ch.Name,
		Playing:     c.Playing(),
		Loading:     c.Loading(),
		StreamError: c.StreamError(),
		ActiveSteps: c.ActiveSteps(),
		Title:       title,
		Received:    info.Received,
	}
}

// Height returns the total height of the player bar at the given width.
func Height(width int) int {
	if width < ui.MinExpandedWidth {
		return 3 // top border + content + bottom border
	}
	return 6 // 4 content rows + 2 border rows
}

// Render returns the player bar string for the given width.
func Render(t *styles.Theme, s State, width int) string {
	if width < ui.MinExpandedWidth {
		return renderCompact(t, s, width)
	}
	return renderExpanded(t, s, width)
}

// status is the glyph and label describing what the stream is doing.
func status(t *styles.Theme, s State) string {
	st := t.S()
	ic := icons.Current()
	switch {
	case s.StreamError:
		return st.Error.Render(ic.Warning + " Stream unavailable")
	case s.Loading:
		return st.Muted.Render("connecting...")
	case s.Playing:
		return st.Accent.Render(ic.Pause) + " " + st.Base.Render("playing")
	default:
		return st.Accent.Render(ic.Play) + " " + st.Muted.Render("paused")
	}
}

// hints lists the keys that do something in the current state.
func hints(t *styles.Theme, s State) string {
	st := t.S()
	if s.StreamError {
		return st.Accent.Render(icons.Current().Retry+" r") + st.Subtle.Render(" restart stream")
	}
	verb := " play"
	if s.Playing || s.Loading {
		verb = " pause"
	}
	return st.Accent.Render("space") + st.Subtle.Render(verb)
}

func received(s State) string {
	if s.Received <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(s.Received))
}

func renderCompact(t *styles.Theme, s State, width int) string {
	innerWidth := max(width-4, 0)
	st := t.S()

	parts := []string{status(t, s)}
	if !s.StreamError {
		parts = append(parts, RenderVolume(t, s.ActiveSteps))
	}
	if s.Title != "" {
		parts = append(parts, st.Muted.Render(render.Title(s.Title)))
	}
	line := strings.Join(parts, st.Subtle.Render(" · "))
	if lipgloss.Width(line) > innerWidth {
		line = ansi.Truncate(line, innerWidth, "…")
	}

	return styles.PanelStyle(t, s.Playing).Width(max(width-2, 0)).Render(line)
}
