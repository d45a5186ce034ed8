package channelbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

var lineup = []channel.Channel{
	{ID: "jazz", Name: "Jazz"},
	{ID: "lofi", Name: "Lo-Fi"},
	{ID: "classical", Name: "Classical"},
}

func TestRender(t *testing.T) {
	out := testutil.StripANSI(Render(styles.T(), lineup, "lofi", 100))

	assert.Contains(t, out, "F1 Jazz")
	assert.Contains(t, out, "F2")
	assert.Contains(t, out, "Lo-Fi")
	assert.Contains(t, out, "F3 Classical")
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestRender_DropsKeysWhenNarrow(t *testing.T) {
	full := testutil.StripANSI(Render(styles.T(), lineup, "jazz", 100))
	narrowWidth := lipgloss.Width(strings.TrimSpace(full)) - 2

	out := testutil.StripANSI(Render(styles.T(), lineup, "jazz", narrowWidth))
	assert.NotContains(t, out, "F1")
	assert.Contains(t, out, "Classical")
	assert.LessOrEqual(t, lipgloss.Width(out), narrowWidth)
}

func TestRender_Truncates(t *testing.T) {
	out := Render(styles.T(), lineup, "jazz", 15)
	assert.LessOrEqual(t, lipgloss.Width(out), 15)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(styles.T(), nil, "", 80))
	assert.Empty(t, Render(styles.T(), lineup, "jazz", 5))
}

func TestAt(t *testing.T) {
	for _, width := range []int{100, 40} {
		out := testutil.StripANSI(Render(styles.T(), lineup, "lofi", width))
		for i, ch := range lineup {
			idx := strings.Index(out, ch.Name)
			if !assert.GreaterOrEqual(t, idx, 0, "width=%d %s", width, ch.Name) {
				continue
			}
			col := lipgloss.Width(out[:idx])
			assert.Equal(t, i, At(styles.T(), lineup, "lofi", width, col), "width=%d %s", width, ch.Name)
			assert.Equal(t, i, At(styles.T(), lineup, "lofi", width, col+len(ch.Name)-1), "width=%d %s", width, ch.Name)
		}

		sep := lipgloss.Width(out[:strings.Index(out, "│")])
		assert.Equal(t, -1, At(styles.T(), lineup, "lofi", width, sep))
	}
}

func TestAt_OutOfRange(t *testing.T) {
	assert.Equal(t, -1, At(styles.T(), lineup, "jazz", 100, -1))
	assert.Equal(t, -1, At(styles.T(), lineup, "jazz", 100, 100))
	assert.Equal(t, -1, At(styles.T(), lineup, "jazz", 100, 0), "left padding")
	assert.Equal(t, -1, At(styles.T(), nil, "", 100, 50))
}
