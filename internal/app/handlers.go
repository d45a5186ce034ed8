package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/app/handler"
	"github.com/radiotedu/radiotedu-tui/internal/app/popupctl"
	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/errmsg"
	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/ui/crossfader"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// helpContexts lists the help popup sections in display order.
var helpContexts = []string{"global", "channel", "player", "crossfader", "pomodoro"}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.popups.HandleKey(msg); handled {
		return cmd
	}

	name := msg.String()
	k := handler.Key{Action: m.keys.Resolve(name), Name: name}
	if k.Action == "" {
		return nil
	}
	_, cmd := handler.Chain(k,
		m.handleGlobalKeys,
		m.handleChannelKeys,
		m.handlePlayerKeys,
		m.handleCrossfaderKeys,
		m.handlePomodoroKeys,
	)
	return cmd
}

func (m *Model) handleGlobalKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionQuit:
		m.shutdown()
		return handler.HandledNoCmd
	case keymap.ActionHelp:
		return handler.Handled(m.popups.ShowHelp(helpContexts))
	case keymap.ActionThankYou:
		m.loveGen++
		m.loveVisible = true
		return handler.Handled(loveTimeoutCmd(m.loveGen))
	}
	return handler.NotHandled
}

func (m *Model) handleChannelKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionChannelNext:
		return handler.Handled(m.selectChannel(m.registry.Next(m.channel.ID)))
	case keymap.ActionChannelPrev:
		return handler.Handled(m.selectChannel(m.registry.Prev(m.channel.ID)))
	case keymap.ActionChannelSelect:
		i := keymap.ChannelIndex(k.Name)
		if i < 0 || i >= m.registry.Len() {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.selectChannel(m.registry.At(i)))
	}
	return handler.NotHandled
}

// selectChannel switches stream, background and theme to ch. Selecting the
// active channel is a no-op.
func (m *Model) selectChannel(ch channel.Channel) tea.Cmd {
	if ch.ID == m.channel.ID {
		return nil
	}
	log.Info().Str("channel", ch.ID).Msg("Switching channel")
	m.channel = ch
	m.theme = styles.ForName(ch.Theme)
	m.popups.SetTheme(m.theme)
	m.refreshMedia()
	return m.playback.SetStreamURL(ch.StreamURL)
}

func (m *Model) handlePlayerKeys(k handler.Key) handler.Result {
	switch k.Action {
	case keymap.ActionPlayPause:
		return handler.Handled(m.playback.TogglePlay())
	case keymap.ActionRetry:
		return handler.Handled(m.playback.Retry())
	case keymap.ActionVolumeUp:
		m.playback.AdjustVolumeStep(1)
		return handler.HandledNoCmd
	case keymap.ActionVolumeDown:
		m.playback.AdjustVolumeStep(-1)
		return handler.HandledNoCmd
	case keymap.ActionVolumeStep:
		if n := keymap.VolumeStep(k.Name); n > 0 {
			m.playback.SetVolumeStep(n)
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleCrossfaderKeys(k handler.Key) handler.Result {
	if k.Action == keymap.ActionToggleNature {
		m.toggleNature()
		return handler.HandledNoCmd
	}
	if cmd := crossfader.Handle(k.Action, m.ratio); cmd != nil {
		return handler.Handled(cmd)
	}
	return handler.NotHandled
}

// toggleNature shows or hides the ambience. A failed start leaves it hidden
// and reports the error.
func (m *Model) toggleNature() {
	if m.nature == nil {
		return
	}
	if m.natureVisible {
		m.nature.Stop()
		m.natureVisible = false
		return
	}
	m.nature.SetGain(m.ratio.NatureGain())
	if err := m.nature.Start(); err != nil {
		log.Error().Err(err).Msg("Nature sound failed to start")
		m.popups.ShowError(errmsg.Format(errmsg.OpNatureStart, err))
		return
	}
	m.natureVisible = true
}

func (m *Model) handlePomodoroKeys(k handler.Key) handler.Result {
	t := m.timer
	switch k.Action {
	case keymap.ActionPomodoroToggle:
		t.Toggle()
		return handler.Handled(t.Schedule())
	case keymap.ActionPomodoroReset:
		t.Reset()
	case keymap.ActionPomodoroResetCounts:
		t.ResetCounts()
	case keymap.ActionPomodoroMinimize:
		if t.Closed() {
			t.Reopen()
		} else {
			t.Close()
		}
	case keymap.ActionPomodoroSettings:
		t.OpenSettings()
		return handler.Handled(m.popups.ShowSettings(t.FocusMinutes(), t.BreakMinutes()))
	case keymap.ActionPomodoroPreset:
		t.CyclePreset()
	case keymap.ActionPomodoroSound:
		t.ToggleSound()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// shutdown tears down every audio source and the media key service.
func (m *Model) shutdown() {
	m.quitting = true
	m.timer.Shutdown()
	if err := m.playback.Close(); err != nil {
		log.Warn().Err(err).Msg("Closing stream engine")
	}
	if m.nature != nil {
		m.nature.Stop()
	}
	if m.remote != nil {
		if err := m.remote.Close(); err != nil {
			log.Warn().Err(err).Msg("Closing media key service")
		}
	}
	m.popups.Hide(popupctl.Help)
}
