package playerbar

import (
	"strings"

	"github.com/radiotedu/radiotedu-tui/internal/ui/render"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

const onAirDot = "●"

// renderExpanded draws the four-row panel:
//
//	radiotedu / jazz                         ● on-air
//	⏸ playing                           space pause
//	Now playing title                        1.2 MB
//	volume ▁▂▂▃▄▅▅▆▇█
func renderExpanded(t *styles.Theme, s State, width int) string {
	st := t.S()
	innerWidth := max(width-4, 0)

	brand := st.Title.Render("radiotedu") + st.Subtle.Render(" / ") +
		st.Accent.Render(strings.ToLower(render.Title(s.Channel)))
	onAir := st.Subtle.Render(onAirDot + " on-air")
	if s.Playing {
		onAir = st.Error.Render(onAirDot) + st.Base.Render(" on-air")
	}

	title := render.Title(s.Title)
	if title == "" {
		title = "—"
	}
	size := received(s)
	title = render.Truncate(title, max(innerWidth-len(size)-2, 1))

	lines := []string{
		render.Row(brand, onAir, innerWidth),
		render.Row(status(t, s), hints(t, s), innerWidth),
		render.Row(st.Muted.Render(title), st.Subtle.Render(size), innerWidth),
		st.Subtle.Render("volume ") + RenderVolume(t, s.ActiveSteps),
	}

	return styles.PanelStyle(t, s.Playing).
		Width(max(width-2, 0)).
		Render(strings.Join(lines, "\n"))
}
