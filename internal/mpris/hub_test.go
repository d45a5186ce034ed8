package mpris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SendAndWait(t *testing.T) {
	h := newHub()
	h.send(RequestMsg{Request: RequestNext})
	h.send(RequestMsg{Request: RequestVolume, Volume: 0.4})

	assert.Equal(t, RequestMsg{Request: RequestNext}, h.WaitForRequest()())
	assert.Equal(t, RequestMsg{Request: RequestVolume, Volume: 0.4}, h.WaitForRequest()())
}

func TestHub_DropsWhenFull(t *testing.T) {
	h := newHub()
	for range queueSize + 5 {
		h.send(RequestMsg{Request: RequestPlayPause})
	}
	assert.Len(t, h.requests, queueSize)
}

func TestHub_Close(t *testing.T) {
	h := newHub()
	h.close()
	h.close()
	h.send(RequestMsg{Request: RequestPlay})
	assert.Nil(t, h.WaitForRequest()())
}

func TestHub_Publish(t *testing.T) {
	h := newHub()
	s := Snapshot{Playing: true, Volume: 0.7, ChannelID: "jazz", ChannelName: "Jazz"}
	h.Publish(s)
	assert.Equal(t, s, h.snapshot())
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "play-pause", RequestPlayPause.String())
	assert.Equal(t, "volume", RequestVolume.String())
	assert.Equal(t, "unknown", Request(99).String())
}

func TestTrackID(t *testing.T) {
	id := trackID("jazz")
	assert.True(t, strings.HasPrefix(id, "/org/mpris/MediaPlayer2/Track/"))
	assert.Equal(t, id, trackID("jazz"))
	assert.NotEqual(t, id, trackID("lofi"))
}

func TestArtURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classical.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o600))

	assert.Equal(t, "file://"+path, ArtURL(path))
	assert.Empty(t, ArtURL(filepath.Join(dir, "missing.jpg")))
	assert.Empty(t, ArtURL(dir))
	assert.Empty(t, ArtURL(""))
}
