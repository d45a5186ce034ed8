package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
)

type countingStreamer struct{ calls int }

func (c *countingStreamer) Stream(samples [][2]float64) (int, bool) {
	c.calls++
	return len(samples), true
}

func (c *countingStreamer) Err() error { return nil }

var _ beep.Streamer = (*countingStreamer)(nil)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{-1, -10},
		{0, -10},
		{0.25, -2},
		{0.5, -1},
		{1, 0},
		{1.5, 0},
	}

	for _, tt := range tests {
		if got := LevelToVolume(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LevelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestClampLevel(t *testing.T) {
	if ClampLevel(-0.3) != 0 || ClampLevel(1.7) != 1 || ClampLevel(0.4) != 0.4 {
		t.Error("ClampLevel should limit to [0, 1]")
	}
}

func TestResample_SameRateIsIdentity(t *testing.T) {
	s := &countingStreamer{}
	if got := Resample(SampleRate, s); got != s {
		t.Error("Resample at the output rate should return the input streamer")
	}
}
