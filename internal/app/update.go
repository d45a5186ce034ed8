package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/app/popupctl"
	"github.com/radiotedu/radiotedu-tui/internal/mpris"
	"github.com/radiotedu/radiotedu-tui/internal/playback"
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui/action"
	"github.com/radiotedu/radiotedu-tui/internal/ui/crossfader"
	"github.com/radiotedu/radiotedu-tui/internal/ui/helpbindings"
	"github.com/radiotedu/radiotedu-tui/internal/ui/pomodoroview"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.publish()
	if m.quitting {
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.popups.SetSize(msg.Width, msg.Height)
		m.refreshMedia()
		return nil

	case playback.EventMsg:
		m.playback.HandleEvent(msg.Event)
		return m.playback.WaitForEvent()

	case playback.PlayResultMsg:
		m.playback.HandlePlayResult(msg)
		return nil

	case pomodoro.TickMsg:
		return m.timer.HandleTick(msg)

	case LoveTimeoutMsg:
		if msg.Gen == m.loveGen {
			m.loveVisible = false
		}
		return nil

	case mpris.RequestMsg:
		cmd := m.handleRemote(msg)
		if m.remote == nil {
			return cmd
		}
		return tea.Batch(cmd, m.remote.WaitForRequest())

	case action.Msg:
		return m.handleAction(msg)
	}

	// Cursor blink and other component messages.
	if m.popups.IsVisible(popupctl.Settings) {
		return m.popups.Forward(popupctl.Settings, msg)
	}
	return nil
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case crossfader.ChangedMsg:
		m.setCrossfade(a.Value)

	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)

	case pomodoroview.SetDuration:
		m.timer.SetDuration(a.Phase, a.Text)
		m.syncSettings()

	case pomodoroview.AdjustDuration:
		m.timer.AdjustDuration(a.Phase, a.Delta)
		m.syncSettings()

	case pomodoroview.CloseSettings:
		m.timer.CloseSettings()
		m.popups.Hide(popupctl.Settings)

	default:
		log.Debug().Str("source", msg.Source).Str("action", msg.Action.ActionType()).Msg("Unhandled action")
	}
	return nil
}

func (m *Model) syncSettings() {
	if s := m.popups.Settings(); s != nil {
		s.Sync(m.timer.FocusMinutes(), m.timer.BreakMinutes())
	}
}

func (m *Model) setCrossfade(v int) {
	m.playback.SetCrossfade(v)
	m.ratio = m.playback.Crossfade()
	if m.nature != nil {
		m.nature.SetGain(m.ratio.NatureGain())
	}
}

// handleRemote applies a media key request.
func (m *Model) handleRemote(msg mpris.RequestMsg) tea.Cmd {
	log.Debug().Stringer("request", msg.Request).Msg("Media key request")
	switch msg.Request {
	case mpris.RequestPlay:
		if m.playback.State() == playback.StatePaused {
			return m.playback.TogglePlay()
		}
	case mpris.RequestPause, mpris.RequestStop:
		if m.playback.State().IsActive() {
			m.playback.Stop()
		}
	case mpris.RequestPlayPause:
		return m.playback.TogglePlay()
	case mpris.RequestNext:
		return m.selectChannel(m.registry.Next(m.channel.ID))
	case mpris.RequestPrevious:
		return m.selectChannel(m.registry.Prev(m.channel.ID))
	case mpris.RequestVolume:
		m.playback.SetVolumeNearest(msg.Volume)
	}
	return nil
}
