//go:build linux

package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"
)

// Adapter serves the MPRIS2 interfaces on the session bus.
type Adapter struct {
	*hub
	server *server.Server
}

// New creates and starts the MPRIS server.
func New() (*Adapter, error) {
	h := newHub()
	a := &Adapter{
		hub:    h,
		server: server.NewServer(Identity, &rootAdapter{}, &playerAdapter{hub: h}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Debug().Err(err).Msg("MPRIS server stopped")
		}
	}()

	return a, nil
}

// Close stops the server and releases D-Bus resources.
func (a *Adapter) Close() error {
	err := a.server.Stop()
	a.close()
	return err
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - the terminal owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return Identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Next and
// Previous switch channels.
type playerAdapter struct {
	hub *hub
}

func (p *playerAdapter) Next() error {
	p.hub.send(RequestMsg{Request: RequestNext})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.hub.send(RequestMsg{Request: RequestPrevious})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.hub.send(RequestMsg{Request: RequestPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.hub.send(RequestMsg{Request: RequestPlayPause})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.hub.send(RequestMsg{Request: RequestStop})
	return nil
}

func (p *playerAdapter) Play() error {
	p.hub.send(RequestMsg{Request: RequestPlay})
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Live streams cannot seek
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.hub.snapshot().Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.hub.snapshot()
	if s.ChannelID == "" {
		return types.Metadata{}, nil
	}

	title := s.Title
	if title == "" {
		title = s.ChannelName
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackID(s.ChannelID)),
		Title:   title,
		Artist:  []string{Identity + " / " + s.ChannelName},
		Album:   s.ChannelName,
		ArtUrl:  ArtURL(s.ArtPath),
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.hub.snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.hub.send(RequestMsg{Request: RequestVolume, Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.hub.snapshot().ChannelID != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
