package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blank(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestCompose_LeadingSpacesAreTransparent(t *testing.T) {
	got := Compose("..........", "   ab", 10)
	assert.Equal(t, "...ab.....", got)
}

func TestCompose_BlankLinesSkipped(t *testing.T) {
	got := Compose(blank(4, 2), "\n xy", 4)
	assert.Equal(t, "....\n.xy.", got)
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("ab", "    z", 6)
	assert.Equal(t, "ab  z ", got)
}

func TestPlaceAt(t *testing.T) {
	got := PlaceAt(blank(6, 3), "ab\ncd", 2, 1, 6)
	assert.Equal(t, "......\n..ab..\n..cd..", got)
}

func TestPlaceAt_ClipsRight(t *testing.T) {
	got := PlaceAt(blank(5, 1), "abcd", 3, 0, 5)
	assert.Equal(t, "...ab", got)
}

func TestPlaceAt_Offscreen(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"above top", 1, -1, ".cd...\n.ef...\n......"},
		{"left of edge", -1, 0, "b.....\nd.....\nf....."},
		{"both", -1, -2, "f.....\n......\n......"},
		{"fully above", 0, -3, blank(6, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceAt(blank(6, 3), "ab\ncd\nef", tt.x, tt.y, 6)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlace_Anchors(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   string
	}{
		{TopLeft, "X....\n.....\n....."},
		{TopRight, "....X\n.....\n....."},
		{BottomLeft, ".....\n.....\nX...."},
		{BottomCenter, ".....\n.....\n..X.."},
		{BottomRight, ".....\n.....\n....X"},
		{Center, ".....\n..X..\n....."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Place(blank(5, 3), "X", tt.anchor, 5, 3, 0))
	}
}

func TestPlace_Empty(t *testing.T) {
	assert.Equal(t, "...", Place("...", "", Center, 3, 1, 0))
}
