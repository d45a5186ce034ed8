package popupctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

func newManager() *Manager {
	m := New(styles.T())
	m.SetSize(100, 40)
	return m
}

func TestManager_Priority(t *testing.T) {
	m := newManager()
	assert.Equal(t, None, m.ActivePopup())

	m.ShowSettings(25, 5)
	assert.Equal(t, Settings, m.ActivePopup())
	require.NotNil(t, m.Settings())

	m.ShowHelp([]string{"global"})
	assert.Equal(t, Help, m.ActivePopup())

	m.ShowError("boom")
	assert.Equal(t, Error, m.ActivePopup())

	m.Hide(Error)
	m.Hide(Help)
	assert.Equal(t, Settings, m.ActivePopup())
	m.Hide(Settings)
	assert.Nil(t, m.Settings())
	assert.Equal(t, None, m.ActivePopup())
}

func TestManager_ErrorDismissedByAnyKey(t *testing.T) {
	m := newManager()
	m.ShowError("Could not start playback")

	handled, cmd := m.HandleKey(testutil.Key("x"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, m.ErrorMsg())
}

func TestManager_HandleKeyRoutesToActive(t *testing.T) {
	m := newManager()
	handled, _ := m.HandleKey(testutil.Key("q"))
	assert.False(t, handled, "no popup, key falls through")

	m.ShowHelp([]string{"global"})
	handled, cmd := m.HandleKey(testutil.Key("esc"))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
}

func TestManager_RenderOverlay(t *testing.T) {
	m := newManager()
	base := testutil.SplitLines(stringsRepeatLines(100, 40))
	require.Len(t, base, 40)

	m.ShowError("stream went away")
	out := m.RenderOverlay(stringsRepeatLines(100, 40))
	assert.True(t, testutil.ContainsLine(out, "stream went away"))
	assert.True(t, testutil.ContainsLine(out, "Press any key to dismiss"))
	assert.Len(t, testutil.SplitLines(out), 40)
}

func stringsRepeatLines(width, height int) string {
	line := ""
	for range width {
		line += "."
	}
	out := line
	for range height - 1 {
		out += "\n" + line
	}
	return out
}
