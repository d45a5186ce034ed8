package playback

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/player"
)

const lofiURL = "https://stream.example.com/lofi"

// playResult runs a play command and returns its result.
func playResult(t *testing.T, cmd tea.Cmd) PlayResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(PlayResultMsg)
	require.True(t, ok, "expected PlayResultMsg")
	return msg
}

func newController(t *testing.T) (*Controller, *player.Mock) {
	t.Helper()
	m := player.NewMock()
	return New(m, 0.7, 50), m
}

func TestNew_AppliesBlendedVolume(t *testing.T) {
	c, m := newController(t)
	assert.InDelta(t, 0.35, m.Volume(), 1e-9)
	assert.InDelta(t, 0.35, c.EffectiveVolume(), 1e-9)
}

func TestSetStreamURL_Autoplay(t *testing.T) {
	c, m := newController(t)

	cmd := c.SetStreamURL(lofiURL)
	assert.True(t, c.Loading())
	assert.Equal(t, []string{lofiURL}, m.LoadCalls())

	msg := playResult(t, cmd)
	assert.Equal(t, PlayAutoplay, msg.Kind)
	c.HandlePlayResult(msg)

	assert.True(t, c.Playing())
	assert.False(t, c.Loading())
	assert.False(t, c.StreamError())
}

func TestAutoplayFailure_NoErrorBanner(t *testing.T) {
	c, m := newController(t)
	m.SetPlayError(errors.New("audio device busy"))

	cmd := c.SetStreamURL(lofiURL)
	c.HandlePlayResult(playResult(t, cmd))

	assert.False(t, c.Playing())
	assert.False(t, c.Loading())
	assert.False(t, c.StreamError())
}

func TestRetryFailure_RaisesStreamError(t *testing.T) {
	c, m := newController(t)
	c.SetStreamURL(lofiURL)
	m.SetPlayError(errors.New("connection refused"))

	cmd := c.Retry()
	assert.Equal(t, []string{lofiURL, lofiURL}, m.LoadCalls())
	c.HandlePlayResult(playResult(t, cmd))

	assert.True(t, c.StreamError())
	assert.False(t, c.Playing())
}

func TestStreamErrorEvent_DisablesToggle(t *testing.T) {
	c, m := newController(t)
	c.SetStreamURL(lofiURL)

	c.HandleEvent(player.Event{Kind: player.EventError, URL: lofiURL, Err: errors.New("eof")})
	require.True(t, c.StreamError())

	assert.Nil(t, c.TogglePlay())
	assert.Equal(t, 0, m.PlayCalls())

	// A successful retry clears the indicator.
	cmd := c.Retry()
	assert.False(t, c.StreamError())
	c.HandlePlayResult(playResult(t, cmd))
	assert.True(t, c.Playing())
	assert.False(t, c.StreamError())
}

func TestURLChange_ClearsStreamError(t *testing.T) {
	c, _ := newController(t)
	c.SetStreamURL(lofiURL)
	c.HandleEvent(player.Event{Kind: player.EventError, URL: lofiURL})

	c.SetStreamURL("https://stream.example.com/jazz")
	assert.False(t, c.StreamError())
	assert.True(t, c.Loading())
}

func TestTogglePlay(t *testing.T) {
	c, m := newController(t)
	cmd := c.SetStreamURL(lofiURL)
	c.HandlePlayResult(playResult(t, cmd))
	require.True(t, c.Playing())

	assert.Nil(t, c.TogglePlay())
	assert.False(t, c.Playing())
	assert.Equal(t, 1, m.Pauses())

	cmd = c.TogglePlay()
	msg := playResult(t, cmd)
	assert.Equal(t, PlayToggle, msg.Kind)
	c.HandlePlayResult(msg)
	assert.True(t, c.Playing())
}

func TestSupersededResultIgnored(t *testing.T) {
	c, m := newController(t)
	first := c.SetStreamURL(lofiURL)
	second := c.SetStreamURL("https://stream.example.com/jazz")

	m.SetPlayError(errors.New("late failure"))
	stale := playResult(t, first)
	c.HandlePlayResult(stale)
	assert.True(t, c.Loading(), "stale result must not change state")

	m.SetPlayError(nil)
	c.HandlePlayResult(playResult(t, second))
	assert.True(t, c.Playing())
}

func TestCanceledRetryIsNotAnError(t *testing.T) {
	c, m := newController(t)
	c.SetStreamURL(lofiURL)
	m.SetPlayError(fmt.Errorf("connect: %w", context.Canceled))

	cmd := c.Retry()
	c.HandlePlayResult(playResult(t, cmd))
	assert.False(t, c.StreamError())
}

func TestHandleEvent(t *testing.T) {
	c, _ := newController(t)
	c.SetStreamURL(lofiURL)

	c.HandleEvent(player.Event{Kind: player.EventReady, URL: lofiURL})
	assert.False(t, c.Loading())

	c.HandleEvent(player.Event{Kind: player.EventPlaying, URL: lofiURL})
	assert.True(t, c.Playing())

	c.HandleEvent(player.Event{Kind: player.EventTitle, URL: lofiURL, Title: "Nujabes - Aruarian Dance"})
	assert.Equal(t, "Nujabes - Aruarian Dance", c.Title())

	c.HandleEvent(player.Event{Kind: player.EventError, URL: "https://old.example.com"})
	assert.False(t, c.StreamError(), "events for another URL are ignored")
}

func TestEffectiveVolume(t *testing.T) {
	for step := 1; step <= VolumeSteps; step++ {
		for v := 0; v <= 100; v += 10 {
			c, m := newController(t)
			c.SetVolumeStep(step)
			c.SetCrossfade(v)

			u := float64(step) / VolumeSteps
			want := u * float64(100-v) / 100
			assert.InDelta(t, want, c.EffectiveVolume(), 1e-9, "u=%v v=%d", u, v)
			assert.InDelta(t, want, m.Volume(), 1e-9, "engine gets the blended volume")
		}
	}
}

func TestVolumeSteps(t *testing.T) {
	c, _ := newController(t)

	c.SetVolumeStep(5)
	assert.Equal(t, 5, c.ActiveSteps())
	assert.InDelta(t, 0.5, c.UserVolume(), 1e-9)

	c.SetVolumeStep(10)
	assert.Equal(t, 10, c.ActiveSteps())

	c.SetVolumeStep(0)
	assert.Equal(t, 1, c.ActiveSteps(), "clamped to the first step")

	c.AdjustVolumeStep(3)
	assert.Equal(t, 4, c.ActiveSteps())
	c.AdjustVolumeStep(-10)
	assert.Equal(t, 1, c.ActiveSteps())
}

func TestSetVolumeNearest(t *testing.T) {
	tests := []struct {
		level     float64
		wantSteps int
	}{
		{0.55, 6},
		{0.54, 5},
		{0.3, 3},
		{0.96, 10},
		{1.7, 10},
		{0.01, 1},
		{-0.2, 1},
	}
	for _, tt := range tests {
		c, m := newController(t)
		c.SetVolumeNearest(tt.level)
		assert.Equal(t, tt.wantSteps, c.ActiveSteps(), "level=%v", tt.level)
		assert.InDelta(t, float64(tt.wantSteps)/VolumeSteps, c.UserVolume(), 1e-9, "level=%v", tt.level)
		assert.InDelta(t, c.EffectiveVolume(), m.Volume(), 1e-9)
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	c, _ := newController(t)
	c.SetVolume(2)
	assert.Equal(t, 1.0, c.UserVolume())
	c.SetVolume(-1)
	assert.Equal(t, 0.0, c.UserVolume())
	assert.Equal(t, 0, c.ActiveSteps())
}

func TestWaitForEvent(t *testing.T) {
	c, m := newController(t)
	c.SetStreamURL(lofiURL)
	m.Emit(player.Event{Kind: player.EventPlaying, URL: lofiURL})

	msg := c.WaitForEvent()()
	ev, ok := msg.(EventMsg)
	require.True(t, ok)
	assert.Equal(t, player.EventPlaying, ev.Event.Kind)
}

func TestClose(t *testing.T) {
	c, m := newController(t)
	require.NoError(t, c.Close())
	assert.True(t, m.Closed())
	assert.False(t, c.Playing())
}
