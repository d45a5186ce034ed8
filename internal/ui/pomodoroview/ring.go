package pomodoroview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Ring geometry. Terminal cells are about twice as tall as wide, so the
// horizontal radius is double the vertical one to look round.
const (
	RingSegments = 24
	RingRows     = 9
	ringRY       = (RingRows - 1) / 2
	ringRX       = ringRY * 2
	RingCols     = ringRX*2 + 1
)

type cell uint8

const (
	cellNone cell = iota
	cellEmpty
	cellFilled
)

const (
	segFilled = "●"
	segEmpty  = "·"
)

// FilledSegments returns how many of n segments a progress value lights.
// Progress 1 lights all of them.
func FilledSegments(progress float64, n int) int {
	if math.IsNaN(progress) {
		return 0
	}
	progress = min(max(progress, 0), 1)
	return min(int(math.Floor(progress*float64(n)+1e-9)), n)
}

// ringCells lays the segments out clockwise from twelve o'clock.
func ringCells(progress float64) [RingRows][RingCols]cell {
	var grid [RingRows][RingCols]cell
	filled := FilledSegments(progress, RingSegments)
	for i := range RingSegments {
		theta := -math.Pi/2 + 2*math.Pi*float64(i)/RingSegments
		x := ringRX + int(math.Round(ringRX*math.Cos(theta)))
		y := ringRY + int(math.Round(ringRY*math.Sin(theta)))
		c := cellEmpty
		if i < filled {
			c = cellFilled
		}
		// A lit segment wins a shared cell.
		if grid[y][x] < c {
			grid[y][x] = c
		}
	}
	return grid
}

// Ring renders the progress ring with label centered inside it.
func Ring(t *styles.Theme, progress float64, label string, alarm bool) string {
	st := t.S()
	lit := st.Accent
	if alarm {
		lit = lipgloss.NewStyle().Foreground(t.Warning)
	}

	grid := ringCells(progress)
	lines := make([]string, RingRows)
	for y, row := range grid {
		var sb strings.Builder
		if y == ringRY {
			// Middle row: outer segments with the label between them.
			sb.WriteString(renderCell(t, row[0], lit))
			inner := RingCols - 2
			sb.WriteString(render.Center(st.Title.Render(label), inner))
			sb.WriteString(renderCell(t, row[RingCols-1], lit))
			lines[y] = sb.String()
			continue
		}
		for _, c := range row {
			sb.WriteString(renderCell(t, c, lit))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func renderCell(t *styles.Theme, c cell, lit lipgloss.Style) string {
	switch c {
	case cellFilled:
		return lit.Render(segFilled)
	case cellEmpty:
		return t.S().Subtle.Render(segEmpty)
	default:
		return " "
	}
}
