package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/app/popupctl"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

const volumeRamp = "▁▂▂▃▄▅▅▆▇█"

// locate returns the cell where substr first appears on screen.
func locate(t *testing.T, f *fixture, substr string) (x, y int) {
	t.Helper()
	for row, line := range testutil.SplitLines(testutil.StripANSI(f.model.View())) {
		if i := strings.Index(line, substr); i >= 0 {
			return lipgloss.Width(line[:i]), row
		}
	}
	require.Failf(t, "not on screen", "%q", substr)
	return 0, 0
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ChannelTab(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	x, y := locate(t, f, "Classical")
	require.Zero(t, y)

	cmd := f.send(click(x+2, y))
	assert.NotNil(t, cmd, "switching loads the new stream")
	assert.Equal(t, "classical", f.model.Channel().ID)

	x, _ = locate(t, f, "Classical")
	assert.Nil(t, f.send(click(x, 0)), "active tab is a no-op")
	assert.Equal(t, "classical", f.model.Channel().ID)
}

func TestMouse_VolumeRamp(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	x, y := locate(t, f, volumeRamp)
	f.send(click(x+2, y))
	assert.Equal(t, 3, f.model.Playback().ActiveSteps())
	assert.InDelta(t, 0.3, f.model.Playback().UserVolume(), 1e-9)

	f.send(click(x+9, y))
	assert.Equal(t, 10, f.model.Playback().ActiveSteps())

	f.send(click(x+10, y))
	assert.Equal(t, 10, f.model.Playback().ActiveSteps(), "past the ramp")
}

func TestMouse_Ignored(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	x, y := locate(t, f, volumeRamp)

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"release", tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"right button", tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{"motion", tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}},
		{"empty area", click(x, y-10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.send(tt.msg)
			assert.Equal(t, 7, f.model.Playback().ActiveSteps())
		})
	}
}

func TestMouse_PopupSwallowsClicks(t *testing.T) {
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	x, y := locate(t, f, volumeRamp)
	tx, _ := locate(t, f, "Lofi")

	f.press("?")
	require.True(t, f.model.Popups().IsVisible(popupctl.Help))

	f.send(click(x, y))
	f.send(click(tx, 0))
	assert.Equal(t, 7, f.model.Playback().ActiveSteps())
	assert.Equal(t, "jazz", f.model.Channel().ID)
}
