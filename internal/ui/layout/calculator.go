// Package layout provides pure functions for placing the dock panels.
package layout

import "github.com/radiotedu/radiotedu-tui/internal/ui"

// CrossfaderWidth is the slider panel width when it sits between the
// player and the timer.
const CrossfaderWidth = 44

// Rect is a screen area in cells. X and Y are 0-based.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at column x, row y is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Opts contains the parameters needed to place the dock.
type Opts struct {
	Width, Height    int
	Mobile           bool
	PlayerHeight     func(width int) int
	CrossfaderHeight int
	TimerWidth       int // of the panel or button actually drawn
	TimerHeight      int
}

// Dock holds where each bottom panel goes.
type Dock struct {
	Player     Rect
	Crossfader Rect
	Timer      Rect
}

// Compute places the panels. On desktop the player sits bottom-left and the
// timer bottom-right, with the crossfader centered in the gap between them
// when it fits and stacked above the player otherwise. On mobile everything
// is stacked full width: player at the bottom, then crossfader, then the
// timer centered.
func Compute(o Opts) Dock {
	if o.Mobile {
		return computeMobile(o)
	}

	var d Dock
	pw := PlayerWidth(o.Width, o.TimerWidth)
	ph := o.PlayerHeight(pw)
	d.Player = Rect{X: 0, Y: o.Height - ph, W: pw, H: ph}
	d.Timer = Rect{X: o.Width - o.TimerWidth, Y: o.Height - o.TimerHeight, W: o.TimerWidth, H: o.TimerHeight}

	if gap := o.Width - pw - o.TimerWidth; CrossfaderFitsGap(gap) {
		d.Crossfader = Rect{
			X: pw + (gap-CrossfaderWidth)/2,
			Y: o.Height - o.CrossfaderHeight,
			W: CrossfaderWidth,
			H: o.CrossfaderHeight,
		}
		return d
	}
	d.Crossfader = Rect{X: 0, Y: d.Player.Y - o.CrossfaderHeight, W: min(CrossfaderWidth, pw), H: o.CrossfaderHeight}
	return d
}

func computeMobile(o Opts) Dock {
	var d Dock
	ph := o.PlayerHeight(o.Width)
	d.Player = Rect{X: 0, Y: o.Height - ph, W: o.Width, H: ph}
	d.Crossfader = Rect{X: 0, Y: d.Player.Y - o.CrossfaderHeight, W: o.Width, H: o.CrossfaderHeight}
	d.Timer = Rect{
		X: max((o.Width-o.TimerWidth)/2, 0),
		Y: d.Crossfader.Y - o.TimerHeight,
		W: o.TimerWidth,
		H: o.TimerHeight,
	}
	return d
}

// PlayerWidth is a third of the window, at least the expanded player width,
// and never so wide that it runs into the timer.
func PlayerWidth(windowWidth, timerWidth int) int {
	w := min(max(windowWidth/3, ui.MinExpandedWidth), windowWidth)
	if w+timerWidth+1 > windowWidth {
		w = max(windowWidth-timerWidth-1, 0)
	}
	return w
}

// CrossfaderFitsGap reports whether the slider fits a gap of the given
// width with a cell of air on each side.
func CrossfaderFitsGap(gap int) bool {
	return gap >= CrossfaderWidth+2
}

// TimerPanelFits reports whether the full timer panel fits above the
// stacked mobile panels without covering the header rows.
func TimerPanelFits(windowHeight, stackedHeight, panelHeight int) bool {
	return windowHeight-stackedHeight-panelHeight > ui.ChannelBarHeight
}
