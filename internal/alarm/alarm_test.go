package alarm

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		if total > 10_000_000 {
			return -1
		}
	}
}

func TestPulses_Bounded(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := pulses(sr, 3*time.Second)
	if err != nil {
		t.Fatalf("pulses error: %v", err)
	}

	got := drain(s)
	if got < 0 {
		t.Fatal("tone never ended")
	}
	count := int(3 * time.Second / (pulseOn + pulseOff))
	want := count * (sr.N(pulseOn) + sr.N(pulseOff))
	if got != want {
		t.Errorf("tone length = %d samples, want %d", got, want)
	}
}

func TestPulses_ShortLengthStillBeeps(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := pulses(sr, time.Millisecond)
	if err != nil {
		t.Fatalf("pulses error: %v", err)
	}
	if got := drain(s); got != sr.N(pulseOn)+sr.N(pulseOff) {
		t.Errorf("length = %d, want one pulse", got)
	}
}

func TestTone_StopWithoutPlay(t *testing.T) {
	tone := New(time.Second)
	tone.Stop()
	if tone.Active() {
		t.Error("tone should not be active")
	}
}
