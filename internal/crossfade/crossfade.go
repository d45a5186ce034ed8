// Package crossfade models the music/nature blend ratio.
package crossfade

// Bounds of the blend ratio.
const (
	Min      = 0
	Max      = 100
	Midpoint = 50
)

// Ratio is the blend between the music stream (0) and nature sound (100).
type Ratio int

// New returns a ratio clamped to [Min, Max].
func New(v int) Ratio {
	return Ratio(Clamp(v))
}

// Clamp limits v to [Min, Max].
func Clamp(v int) int {
	return min(max(v, Min), Max)
}

// Value returns the raw ratio.
func (r Ratio) Value() int { return int(r) }

// MusicPercent is the share of the music stream.
func (r Ratio) MusicPercent() int { return Max - Clamp(int(r)) }

// NaturePercent is the share of the nature sound.
func (r Ratio) NaturePercent() int { return Clamp(int(r)) }

// MusicGain returns the music share as a 0..1 multiplier.
func (r Ratio) MusicGain() float64 { return float64(r.MusicPercent()) / Max }

// NatureGain returns the nature share as a 0..1 multiplier.
func (r Ratio) NatureGain() float64 { return float64(r.NaturePercent()) / Max }

// Step returns the ratio moved by delta, clamped.
func (r Ratio) Step(delta int) Ratio { return New(int(r) + delta) }

// Reset returns the midpoint.
func Reset() Ratio { return Midpoint }

// EffectiveVolume blends a user volume (0..1) with the ratio:
// volume × (100 − ratio) / 100.
func EffectiveVolume(volume float64, r Ratio) float64 {
	return volume * float64(Max-Clamp(int(r))) / Max
}
