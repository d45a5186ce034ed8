package backdrop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiotedu/radiotedu-tui/internal/background"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: 120, B: uint8(y * 255 / h), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "jazz.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func assertSize(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height)
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line))
	}
}

func TestRender_Image(t *testing.T) {
	path := writePNG(t, 64, 48)
	r := New()
	out := r.Render(styles.T(), background.Media{Path: path, Kind: background.KindImage}, 30, 10)

	assertSize(t, out, 30, 10)
	assert.Contains(t, testutil.StripANSI(out), halfBlock)
	assert.NotContains(t, testutil.StripANSI(out), "looping")
}

func TestRender_VideoShowsCaption(t *testing.T) {
	r := New()
	out := r.Render(styles.ForName("lofi"), background.Media{Path: "/assets/lofi.mp4", Kind: background.KindVideo}, 40, 8)

	assertSize(t, out, 40, 8)
	assert.True(t, testutil.ContainsLine(out, "looping lofi.mp4"))
}

func TestRender_MissingImageFallsBack(t *testing.T) {
	r := New()
	out := r.Render(styles.T(), background.Media{Path: "/nope/missing.jpg", Kind: background.KindImage}, 40, 6)

	assertSize(t, out, 40, 6)
	assert.True(t, testutil.ContainsLine(out, "looping missing.jpg"))
}

func TestRender_Caches(t *testing.T) {
	path := writePNG(t, 16, 16)
	r := New()
	m := background.Media{Path: path, Kind: background.KindImage}

	first := r.Render(styles.T(), m, 20, 5)
	require.NoError(t, os.Remove(path))

	assert.Equal(t, first, r.Render(styles.T(), m, 20, 5), "same key reuses the cached frame")
	assert.True(t, testutil.ContainsLine(r.Render(styles.T(), m, 21, 5), "looping jazz.png"),
		"a new size re-renders")
}

func TestRender_ZeroSize(t *testing.T) {
	assert.Empty(t, New().Render(styles.T(), background.Media{}, 0, 10))
}

func TestCover(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	scaled, off := cover(img, 20, 20)
	b := scaled.Bounds()
	assert.GreaterOrEqual(t, b.Dx()-off.X+b.Min.X, 20)
	assert.Equal(t, 40, b.Dx())
	assert.Equal(t, 20, b.Dy())
	assert.Equal(t, 10, off.X)
	assert.Equal(t, 0, off.Y)
}
