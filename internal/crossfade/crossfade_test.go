package crossfade

import (
	"math"
	"testing"
)

func TestPercentsAlwaysSumTo100(t *testing.T) {
	for v := Min; v <= Max; v++ {
		r := New(v)
		if got := r.MusicPercent() + r.NaturePercent(); got != 100 {
			t.Fatalf("v=%d: music+nature = %d, want 100", v, got)
		}
		if r.MusicPercent() != 100-v || r.NaturePercent() != v {
			t.Fatalf("v=%d: music=%d nature=%d", v, r.MusicPercent(), r.NaturePercent())
		}
	}
}

func TestNew_Clamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := New(tt.in).Value(); got != tt.want {
			t.Errorf("New(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStepAndReset(t *testing.T) {
	r := New(98).Step(5)
	if r.Value() != 100 {
		t.Errorf("Step past max = %d, want 100", r.Value())
	}
	r = New(3).Step(-5)
	if r.Value() != 0 {
		t.Errorf("Step past min = %d, want 0", r.Value())
	}
	if Reset().Value() != 50 {
		t.Errorf("Reset() = %d, want 50", Reset().Value())
	}
}

func TestEffectiveVolume(t *testing.T) {
	for step := 1; step <= 10; step++ {
		u := float64(step) / 10
		for v := Min; v <= Max; v++ {
			want := u * float64(100-v) / 100
			got := EffectiveVolume(u, New(v))
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("EffectiveVolume(%v, %d) = %v, want %v", u, v, got, want)
			}
		}
	}
}

func TestGains(t *testing.T) {
	r := New(25)
	if r.MusicGain() != 0.75 || r.NatureGain() != 0.25 {
		t.Errorf("gains = %v/%v, want 0.75/0.25", r.MusicGain(), r.NatureGain())
	}
}
