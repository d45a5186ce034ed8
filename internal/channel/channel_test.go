package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/config"
)

func testChannels() []Channel {
	return []Channel{
		{ID: "jazz", Name: "Jazz", StreamURL: "https://example.com/jazz", Background: "jazz.jpg", IsImage: true, Theme: "jazz"},
		{ID: "lofi", Name: "Lofi", StreamURL: "https://example.com/lofi", Background: "lofi.mp4", Theme: "lofi"},
		{ID: "classical", Name: "Classical", StreamURL: "https://example.com/classical", Background: "classical.mp4", Theme: "classical"},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(testChannels(), "lofi")
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "lofi", r.Default().ID)

	ch, ok := r.Get("jazz")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/jazz", ch.StreamURL)
	assert.True(t, ch.IsImage)

	_, ok = r.Get("rock")
	assert.False(t, ok)
}

func TestNewRegistry_UnknownDefaultFallsBackToFirst(t *testing.T) {
	r, err := NewRegistry(testChannels(), "rock")
	require.NoError(t, err)
	assert.Equal(t, "jazz", r.Default().ID)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry(nil, "")
	require.ErrorIs(t, err, ErrNoChannels)

	dup := append(testChannels(), Channel{ID: "jazz"})
	_, err = NewRegistry(dup, "")
	require.Error(t, err)

	_, err = NewRegistry([]Channel{{Name: "nameless"}}, "")
	require.Error(t, err)
}

func TestRegistry_IsolatedFromCaller(t *testing.T) {
	src := testChannels()
	r, err := NewRegistry(src, "")
	require.NoError(t, err)

	src[0].StreamURL = "changed"
	all := r.All()
	all[1].Name = "changed"

	ch, _ := r.Get("jazz")
	assert.Equal(t, "https://example.com/jazz", ch.StreamURL)
	ch, _ = r.Get("lofi")
	assert.Equal(t, "Lofi", ch.Name)
}

func TestRegistry_NextPrevWrap(t *testing.T) {
	r, err := NewRegistry(testChannels(), "")
	require.NoError(t, err)

	assert.Equal(t, "lofi", r.Next("jazz").ID)
	assert.Equal(t, "jazz", r.Next("classical").ID)
	assert.Equal(t, "classical", r.Prev("jazz").ID)
	assert.Equal(t, "jazz", r.Prev("lofi").ID)
	assert.Equal(t, "jazz", r.Prev("unknown").ID)
	assert.Equal(t, -1, r.Index("unknown"))
	assert.Equal(t, "classical", r.At(-1).ID)
}

func TestFromConfig_DefaultLineup(t *testing.T) {
	r, err := FromConfig(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, "lofi", r.Default().ID)
	for _, ch := range r.All() {
		assert.Equal(t, ch.ID, ch.Theme, "theme should match channel id")
		assert.NotEmpty(t, ch.StreamURL)
	}
}
