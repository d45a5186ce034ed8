package playerbar

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/radiotedu/radiotedu-tui/internal/playback"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
)

// volumeRamp holds one rising bar per volume step.
var volumeRamp = []rune("▁▂▂▃▄▅▅▆▇█")

// RenderVolume renders the stepped volume indicator; the first active bars
// are lit and the rest dimmed.
func RenderVolume(t *styles.Theme, active int) string {
	active = min(max(active, 0), playback.VolumeSteps)
	st := t.S()
	var sb strings.Builder
	sb.WriteString(st.Accent.Render(string(volumeRamp[:active])))
	sb.WriteString(st.Subtle.Render(string(volumeRamp[active:])))
	return sb.String()
}

// VolumeAt returns the step drawn at column x of a rendered player line, or
// 0 when x is not on the volume indicator.
func VolumeAt(line string, x int) int {
	plain := ansi.Strip(line)
	i := strings.Index(plain, string(volumeRamp))
	if i < 0 {
		return 0
	}
	start := ansi.StringWidth(plain[:i])
	if x < start || x >= start+len(volumeRamp) {
		return 0
	}
	return x - start + 1
}
