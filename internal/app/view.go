package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/ui"
	"github.com/radiotedu/radiotedu-tui/internal/ui/channelbar"
	"github.com/radiotedu/radiotedu-tui/internal/ui/crossfader"
	"github.com/radiotedu/radiotedu-tui/internal/ui/layout"
	"github.com/radiotedu/radiotedu-tui/internal/ui/overlay"
	"github.com/radiotedu/radiotedu-tui/internal/ui/playerbar"
	"github.com/radiotedu/radiotedu-tui/internal/ui/pomodoroview"
	"github.com/radiotedu/radiotedu-tui/internal/ui/toast"
)

// LoveMessage answers the thank-you action.
const LoveMessage = "we love you too!"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	view := m.backdrop.Render(m.theme, m.media, m.width, m.height)
	view = overlay.PlaceAt(view, channelbar.Render(m.theme, m.registry.All(), m.channel.ID, m.width), 0, 0, m.width)
	view = overlay.PlaceAt(view, m.natureHint(), 1, ui.ChannelBarHeight, m.width)
	if m.loveVisible {
		love := m.loveText()
		view = overlay.PlaceAt(view, love, m.width-ansi.StringWidth(love)-1, ui.ChannelBarHeight, m.width)
	}

	view = m.layoutDock(view)

	if tt, ok := m.timer.Toast(); ok {
		box := toast.Render(m.theme, tt.Title, tt.Body, m.keyHint(keymap.ActionPomodoroToggle, "dismiss"), m.width)
		view = overlay.Place(view, box, overlay.Center, m.width, m.height, 0)
	}
	view = m.popups.RenderOverlay(view)
	return fitHeight(view, m.height)
}

// keyHint is "{first key} {label}" for a bound action.
func (m Model) keyHint(a keymap.Action, label string) string {
	keys := m.keys.KeysFor(a)
	if len(keys) == 0 {
		return label
	}
	return keys[0] + " " + label
}

func (m Model) loveText() string {
	return m.theme.S().Love.Render(LoveMessage + " " + icons.Current().Heart)
}

// natureHint is the "add nature sound" button, or the playing ambience.
func (m Model) natureHint() string {
	if m.nature == nil {
		return ""
	}
	st := m.theme.S()
	ic := icons.Current()
	if m.natureVisible {
		return st.Accent.Render(ic.Nature+" "+m.nature.Title()) + st.Subtle.Render("  "+m.keyHint(keymap.ActionToggleNature, "hide"))
	}
	return st.Muted.Render(ic.Nature+" add nature sound") + st.Subtle.Render("  "+m.keyHint(keymap.ActionToggleNature, "add"))
}

func (m Model) natureTitle() string {
	if m.nature == nil {
		return ""
	}
	return m.nature.Title()
}

// layoutDock draws the player, crossfader and timer at the bottom of the
// screen.
func (m Model) layoutDock(view string) string {
	d, timer := m.dock()
	view = overlay.PlaceAt(view, m.renderPlayer(d.Player.W), d.Player.X, d.Player.Y, m.width)
	fader := crossfader.Render(m.theme, m.ratio, m.natureTitle(), d.Crossfader.W)
	view = overlay.PlaceAt(view, fader, d.Crossfader.X, d.Crossfader.Y, m.width)
	return overlay.PlaceAt(view, timer, d.Timer.X, d.Timer.Y, m.width)
}

func (m Model) renderPlayer(width int) string {
	return playerbar.Render(m.theme, playerbar.NewState(m.playback, m.channel), width)
}

// dock places the bottom panels and returns the timer as it will be drawn.
func (m Model) dock() (layout.Dock, string) {
	s := pomodoroview.NewState(m.timer)
	timer := pomodoroview.Button(m.theme, s)
	if !m.timer.Closed() {
		stacked := playerbar.Height(m.width) + crossfader.Height
		if !m.mobile || layout.TimerPanelFits(m.height, stacked, pomodoroview.Height()) {
			timer = pomodoroview.Render(m.theme, s)
		}
	}
	tw, th := blockSize(timer)

	d := layout.Compute(layout.Opts{
		Width:            m.width,
		Height:           m.height,
		Mobile:           m.mobile,
		PlayerHeight:     playerbar.Height,
		CrossfaderHeight: crossfader.Height,
		TimerWidth:       tw,
		TimerHeight:      th,
	})
	return d, timer
}

func blockSize(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return width, len(lines)
}

// fitHeight pads or clips view to exactly height lines.
func fitHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
