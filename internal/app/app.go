// Package app holds the root Bubble Tea model: it owns the top-level state
// (active channel, crossfade ratio, nature visibility, thank-you message,
// terminal size) and wires key actions, engine events and media key
// requests to the components.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/app/popupctl"
	"github.com/radiotedu/radiotedu-tui/internal/background"
	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/config"
	"github.com/radiotedu/radiotedu-tui/internal/crossfade"
	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/mpris"
	"github.com/radiotedu/radiotedu-tui/internal/playback"
	"github.com/radiotedu/radiotedu-tui/internal/player"
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/ui/backdrop"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Nature is the ambient sound mixed against the music stream.
type Nature interface {
	Start() error
	Stop()
	SetGain(gain float64)
	Title() string
	Playing() bool
}

// Remote is a media key service (MPRIS on Linux).
type Remote interface {
	Publish(s mpris.Snapshot)
	WaitForRequest() tea.Cmd
	Close() error
}

// Deps are the capabilities the root model drives.
type Deps struct {
	Config   *config.Config
	Registry *channel.Registry
	Engine   player.Engine
	Timer    *pomodoro.Timer
	Nature   Nature // nil disables the ambience
	Remote   Remote // nil without media key support
	Signals  background.Signals
}

// Model is the root application model.
type Model struct {
	registry *channel.Registry
	channel  channel.Channel
	theme    *styles.Theme

	playback *playback.Controller
	ratio    crossfade.Ratio

	nature        Nature
	natureVisible bool

	timer  *pomodoro.Timer
	popups *popupctl.Manager
	keys   *keymap.Resolver
	remote Remote

	backdrop    *backdrop.Renderer
	signals     background.Signals
	mobileVideo string
	mobileWidth int
	mobile      bool
	media       background.Media

	loveVisible bool
	loveGen     int

	width    int
	height   int
	quitting bool
}

// New creates the root model on the registry's default channel.
func New(d Deps) Model {
	ch := d.Registry.Default()
	theme := styles.ForName(ch.Theme)
	ratio := crossfade.New(*d.Config.GetCrossfadeConfig().Initial)

	m := Model{
		registry:    d.Registry,
		channel:     ch,
		theme:       theme,
		playback:    playback.New(d.Engine, *d.Config.GetPlayerConfig().Volume, ratio.Value()),
		ratio:       ratio,
		nature:      d.Nature,
		timer:       d.Timer,
		popups:      popupctl.New(theme),
		keys:        keymap.NewResolver(keymap.Bindings),
		remote:      d.Remote,
		backdrop:    backdrop.New(),
		signals:     d.Signals,
		mobileVideo: d.Config.GetMobileVideo(),
		mobileWidth: d.Config.GetMobileWidth(),
	}
	m.refreshMedia()
	return m
}

// Init implements tea.Model. It mounts the player on the default channel
// and starts listening for media key requests.
func (m Model) Init() tea.Cmd {
	m.publish()
	cmds := []tea.Cmd{m.playback.Mount(m.channel.StreamURL)}
	if m.remote != nil {
		cmds = append(cmds, m.remote.WaitForRequest())
	}
	return tea.Batch(cmds...)
}

// Channel returns the active channel.
func (m Model) Channel() channel.Channel { return m.channel }

// Theme returns the active channel's theme.
func (m Model) Theme() *styles.Theme { return m.theme }

// Media returns the background currently selected.
func (m Model) Media() background.Media { return m.media }

// Crossfade returns the blend ratio.
func (m Model) Crossfade() crossfade.Ratio { return m.ratio }

// Playback returns the audio player controller.
func (m Model) Playback() *playback.Controller { return m.playback }

// NatureVisible reports whether the nature sound is shown and playing.
func (m Model) NatureVisible() bool { return m.natureVisible }

// LoveVisible reports whether the thank-you message is shown.
func (m Model) LoveVisible() bool { return m.loveVisible }

// Popups returns the popup manager.
func (m Model) Popups() *popupctl.Manager { return m.popups }

// refreshMedia re-evaluates the device class and background asset.
func (m *Model) refreshMedia() {
	sig := m.signals
	sig.Width = m.width
	m.mobile = background.IsMobile(sig, m.mobileWidth)
	m.media = background.Select(m.channel, m.mobile, m.mobileVideo)
}

// publish sends the current player state to the media key service.
func (m *Model) publish() {
	if m.remote == nil {
		return
	}
	art := ""
	if m.channel.IsImage {
		art = m.channel.Background
	}
	m.remote.Publish(mpris.Snapshot{
		Playing:     m.playback.State() == playback.StatePlaying,
		Volume:      m.playback.UserVolume(),
		ChannelID:   m.channel.ID,
		ChannelName: m.channel.Name,
		Title:       m.playback.Title(),
		ArtPath:     art,
	})
}
