// Package backdrop draws the channel background behind the controls.
//
// Images are scaled to cover the screen and drawn with half-block cells,
// two pixels per cell, darkened toward the theme background so the panels
// on top stay readable. Videos cannot play in a terminal; they and missing
// assets get a themed gradient with a caption naming the asset.
package backdrop

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG backgrounds
	_ "image/png"  // PNG backgrounds
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/background"
	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// DimAmount is how far image pixels are pulled toward the theme background.
const DimAmount = 0.6

const halfBlock = "▀"

type cacheKey struct {
	media  background.Media
	theme  string
	width  int
	height int
}

// Renderer caches the last rendered backdrop; decoding and scaling only
// happen when the media, theme or size change. It is not safe for
// concurrent use.
type Renderer struct {
	key    cacheKey
	out    string
	cached bool
}

// New creates a backdrop renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render returns a width x height backdrop for m.
func (r *Renderer) Render(t *styles.Theme, m background.Media, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	key := cacheKey{media: m, theme: t.Name, width: width, height: height}
	if r.cached && r.key == key {
		return r.out
	}

	out, err := r.draw(t, m, width, height)
	if err != nil {
		log.Debug().Err(err).Str("path", m.Path).Msg("Background image unavailable, using gradient")
		out = Gradient(t, caption(m), width, height)
	}
	r.key, r.out, r.cached = key, out, true
	return out
}

func (r *Renderer) draw(t *styles.Theme, m background.Media, width, height int) (string, error) {
	if m.Kind != background.KindImage {
		return Gradient(t, caption(m), width, height), nil
	}
	img, err := load(m.Path)
	if err != nil {
		return "", err
	}
	return HalfBlocks(t, img, width, height), nil
}

func caption(m background.Media) string {
	name := filepath.Base(m.Path)
	if m.Path == "" {
		name = "background"
	}
	return fmt.Sprintf("looping %s", name)
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// cover scales img so it fills w x h pixels, cropping the overflow evenly.
func cover(img image.Image, w, h int) (image.Image, image.Point) {
	b := img.Bounds()
	sx := float64(w) / float64(b.Dx())
	sy := float64(h) / float64(b.Dy())
	scale := max(sx, sy)
	nw := max(int(float64(b.Dx())*scale+0.5), w)
	nh := max(int(float64(b.Dy())*scale+0.5), h)

	scaled := resize.Resize(uint(nw), uint(nh), img, resize.Bilinear) //nolint:gosec // screen-sized
	sb := scaled.Bounds()
	return scaled, image.Point{X: sb.Min.X + (nw-w)/2, Y: sb.Min.Y + (nh-h)/2}
}

// HalfBlocks draws img as width x height cells. Each cell shows two
// vertically stacked pixels: the upper one as foreground of ▀ and the
// lower one as background.
func HalfBlocks(t *styles.Theme, img image.Image, width, height int) string {
	if img.Bounds().Empty() {
		return Gradient(t, "", width, height)
	}
	scaled, off := cover(img, width, height*2)

	lines := make([]string, height)
	for y := range height {
		var sb strings.Builder
		for x := range width {
			top := styles.Dim(scaled.At(off.X+x, off.Y+2*y), t.BgBase, DimAmount)
			bottom := styles.Dim(scaled.At(off.X+x, off.Y+2*y+1), t.BgBase, DimAmount)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(styles.Hex(top)).
				Background(styles.Hex(bottom)).
				Render(halfBlock))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Gradient fills width x height with a vertical blend from a tint of the
// theme's primary color down to its background. A non-empty caption is
// written near the bottom.
func Gradient(t *styles.Theme, caption string, width, height int) string {
	top := styles.Blend(t.BgBase, t.Primary, 0.18)
	lines := make([]string, height)
	for y := range height {
		frac := 0.0
		if height > 1 {
			frac = float64(y) / float64(height-1)
		}
		bg := lipgloss.NewStyle().Background(styles.Blend(top, t.BgBase, frac))
		content := strings.Repeat(" ", width)
		if caption != "" && y == max(height-2, 0) {
			content = render.Center(render.Truncate(caption, width), width)
			bg = bg.Foreground(t.FgSubtle).Italic(true)
		}
		lines[y] = bg.Render(content)
	}
	return strings.Join(lines, "\n")
}
