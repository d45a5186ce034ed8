package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/app/popupctl"
	"github.com/radiotedu/radiotedu-tui/internal/ui"
	"github.com/radiotedu/radiotedu-tui/internal/ui/channelbar"
	"github.com/radiotedu/radiotedu-tui/internal/ui/playerbar"
)

// handleMouse switches channels from the tab strip and sets the volume from
// the player's step indicator. Popups swallow clicks.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.popups.ActivePopup() != popupctl.None || m.width <= 0 || m.height <= 0 {
		return nil
	}

	if msg.Y < ui.ChannelBarHeight {
		channels := m.registry.All()
		if i := channelbar.At(m.theme, channels, m.channel.ID, m.width, msg.X); i >= 0 {
			return m.selectChannel(channels[i])
		}
		return nil
	}

	d, _ := m.dock()
	if !d.Player.Contains(msg.X, msg.Y) {
		return nil
	}
	lines := strings.Split(m.renderPlayer(d.Player.W), "\n")
	row := msg.Y - d.Player.Y
	if row >= len(lines) {
		return nil
	}
	if step := playerbar.VolumeAt(lines[row], msg.X-d.Player.X); step > 0 {
		m.playback.SetVolumeStep(step)
	}
	return nil
}
