package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/ui/styles"
	"github.com/radiotedu/radiotedu-tui/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	icons.Init("unicode")
	out := Render(styles.T(), "Focus complete",
		"1st focus session done. Take a 5 minute break.", "enter dismiss", 120)
	plain := testutil.StripANSI(out)

	assert.Contains(t, plain, "◷ Focus complete")
	assert.Contains(t, plain, "1st focus session done.")
	assert.Contains(t, plain, "enter dismiss")
	assert.Equal(t, MaxWidth, testutil.MaxWidth(out))
	assert.Greater(t, len(testutil.SplitLines(plain)), 4, "body wraps inside the box")
}

func TestRender_Narrow(t *testing.T) {
	icons.Init("unicode")
	out := Render(styles.T(), "Break over", "Back to focus.", "", 30)
	assert.Equal(t, 30, testutil.MaxWidth(out))
	assert.NotContains(t, testutil.StripANSI(out), "dismiss")
	assert.Empty(t, Render(styles.T(), "x", "y", "", 8))
}
