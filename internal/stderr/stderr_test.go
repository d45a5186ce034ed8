//go:build !windows

package stderr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForward_SkipsBlankLines(t *testing.T) {
	var lines []string
	done := make(chan struct{})

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  trailing  \n"), func(l string) {
		lines = append(lines, l)
	}, done)

	<-done
	assert.Equal(t, []string{"ALSA lib pcm.c: underrun", "trailing"}, lines)
}

func TestForward_NilSink(t *testing.T) {
	done := make(chan struct{})
	assert.NotPanics(t, func() { forward(strings.NewReader("x\n"), nil, done) })
}
