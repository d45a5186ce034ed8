package styles

import (
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	for _, name := range []string{"jazz", "lofi", "classical"} {
		assert.Equal(t, name, ForName(name).Name)
	}
	assert.Equal(t, DefaultTheme, ForName("unknown").Name)
	assert.Same(t, T(), ForName(""))
}

func TestThemesAreComplete(t *testing.T) {
	for name, th := range themes {
		for _, c := range []lipgloss.Color{th.Primary, th.FgBase, th.FgMuted, th.BgBase, th.BgPanel, th.Border} {
			assert.Len(t, string(c), 7, "theme %s has a non-hex color", name)
		}
		assert.NotNil(t, th.S())
	}
}

func TestBlend_Endpoints(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")
	assert.Equal(t, lipgloss.Color("#000000"), Blend(from, to, 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(from, to, 1))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(from, to, 5), "t is clamped")
}

func TestDim(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	assert.Equal(t, lipgloss.Color("#000000"), Hex(Dim(white, "#000000", 1)))
	assert.Equal(t, lipgloss.Color("#ffffff"), Hex(Dim(white, "#000000", 0)))

	got := Dim(white, "#000000", 0.6)
	assert.InDelta(t, 0.4, got.R, 0.01)
}

func TestApplyGradient(t *testing.T) {
	assert.Empty(t, ApplyGradient("", "#000000", "#ffffff"))
	out := ApplyGradient("radiotedu", "#c9a962", "#f5f0e8")
	assert.Equal(t, "radiotedu", stripForTest(out))
}

// stripForTest removes SGR sequences.
func stripForTest(s string) string {
	var out []rune
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			out = append(out, r)
		}
	}
	return string(out)
}
