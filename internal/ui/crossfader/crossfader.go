// Package crossfader renders the music/nature blend slider and turns key
// actions into blend change requests for the root model.
package crossfader

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/radiotedu/radiotedu-tui/internal/crossfade"
	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/keymap"
	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// Source identifies crossfader actions in action.Msg.
const Source = "crossfader"

// Step is how far one key press moves the slider.
const Step = 10

// FineStep is the shift+arrow increment.
const FineStep = 1

// Height is the rendered height including the border.
const Height = 4

const (
	knob      = "●"
	trackFull = "━"
	trackRest = "─"
)

// Handle maps a crossfader key action to a change request, or nil when the
// action does not move the slider.
func Handle(a keymap.Action, current crossfade.Ratio) tea.Cmd {
	var next crossfade.Ratio
	switch a {
	case keymap.ActionCrossfadeMusic:
		next = current.Step(-Step)
	case keymap.ActionCrossfadeNature:
		next = current.Step(Step)
	case keymap.ActionCrossfadeMusicFine:
		next = current.Step(-FineStep)
	case keymap.ActionCrossfadeNatureFine:
		next = current.Step(FineStep)
	case keymap.ActionCrossfadeReset:
		next = crossfade.Reset()
	default:
		return nil
	}
	return Request(next.Value())
}

// Render draws the slider panel:
//
//	Just Music ━━━━━━━━━●────────── Just Nature
//	♫ 50%               ☘ Rain 50%   \ reset
func Render(t *styles.Theme, r crossfade.Ratio, natureTitle string, width int) string {
	st := t.S()
	ic := icons.Current()
	innerWidth := max(width-4, 0)

	left := st.Muted.Render("Just Music ")
	right := st.Muted.Render(" Just Nature")
	trackWidth := max(innerWidth-len("Just Music ")-len(" Just Nature"), 5)

	music := st.Base.Render(fmt.Sprintf("%s %d%%", ic.Music, r.MusicPercent()))
	nature := st.Base.Render(fmt.Sprintf("%s %s %d%%", ic.Nature, render.Title(natureTitle), r.NaturePercent()))
	reset := st.Accent.Render(`\`) + st.Subtle.Render(" reset")

	lines := []string{
		left + Slider(t, r, trackWidth) + right,
		render.Row(music, nature+"   "+reset, innerWidth),
	}
	return styles.PanelStyle(t, false).Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

// Slider draws a track of width cells with the knob at the ratio's position.
func Slider(t *styles.Theme, r crossfade.Ratio, width int) string {
	if width < 1 {
		return ""
	}
	st := t.S()
	pos := r.NaturePercent() * (width - 1) / crossfade.Max
	return st.Accent.Render(strings.Repeat(trackFull, pos)) +
		st.Accent.Render(knob) +
		st.Subtle.Render(strings.Repeat(trackRest, width-1-pos))
}
