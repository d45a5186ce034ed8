// Package overlay draws boxes on top of a rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Leading and trailing spaces of each overlay line are transparent; every
// other cell replaces the base cell at the same position.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}

		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := ansi.StringWidth(trimmed)
		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// Cutting through a wide rune can leave the prefix short; pad it.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			suffixWidth := ansi.StringWidth(suffix)
			want := width - endCol
			switch {
			case suffixWidth > want:
				suffix = " " + ansi.Cut(suffix, suffixWidth-want+1, suffixWidth)
			case suffixWidth < want:
				suffix += strings.Repeat(" ", want-suffixWidth)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// PlaceAt draws box with its top-left corner at column x, row y.
// Parts falling outside the base are clipped, including rows above the
// top and columns left of the edge when x or y is negative.
func PlaceAt(base, box string, x, y, width int) string {
	if box == "" {
		return base
	}
	lines := strings.Split(box, "\n")
	if y < 0 {
		if -y >= len(lines) {
			return base
		}
		lines = lines[-y:]
		y = 0
	}

	shifted := make([]string, 0, y+len(lines))
	for range y {
		shifted = append(shifted, "")
	}
	col := max(x, 0)
	pad := strings.Repeat(" ", col)
	for _, l := range lines {
		if x < 0 {
			l = ansi.Cut(l, -x, ansi.StringWidth(l))
		}
		if col+ansi.StringWidth(l) > width {
			l = ansi.Truncate(l, max(width-col, 0), "")
		}
		shifted = append(shifted, pad+l)
	}
	return Compose(base, strings.Join(shifted, "\n"), width)
}

// Anchor says where a box sits on the screen.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomCenter
	BottomRight
	Center
)

// Place draws box at anchor, keeping margin cells from the screen edges.
func Place(base, box string, anchor Anchor, width, height, margin int) string {
	if box == "" {
		return base
	}
	boxW := 0
	lines := strings.Split(box, "\n")
	for _, l := range lines {
		boxW = max(boxW, ansi.StringWidth(l))
	}
	boxH := len(lines)

	var x, y int
	switch anchor {
	case TopLeft:
		x, y = margin, margin
	case TopRight:
		x, y = width-boxW-margin, margin
	case BottomLeft:
		x, y = margin, height-boxH-margin
	case BottomCenter:
		x, y = (width-boxW)/2, height-boxH-margin
	case BottomRight:
		x, y = width-boxW-margin, height-boxH-margin
	case Center:
		x, y = (width-boxW)/2, (height-boxH)/2
	}
	return PlaceAt(base, box, max(x, 0), max(y, 0), width)
}
