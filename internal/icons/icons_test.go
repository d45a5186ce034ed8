package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to unicode", "", unicodeIcons},
		{"unknown style defaults to unicode", "invalid", unicodeIcons},
		{"case sensitive - NERD defaults to unicode", "NERD", unicodeIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if Current() != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("unicode")
}

func TestPlayPause(t *testing.T) {
	Init("none")
	defer Init("unicode")

	if got := PlayPause(true); got != "||" {
		t.Errorf("PlayPause(true) = %q, want ||", got)
	}
	if got := PlayPause(false); got != ">" {
		t.Errorf("PlayPause(false) = %q, want >", got)
	}
}

func TestSoundToggle(t *testing.T) {
	Init("none")
	defer Init("unicode")

	if got := SoundToggle(true); got != "on" {
		t.Errorf("SoundToggle(true) = %q, want on", got)
	}
	if got := SoundToggle(false); got != "off" {
		t.Errorf("SoundToggle(false) = %q, want off", got)
	}
}

func TestAllSetsComplete(t *testing.T) {
	for name, set := range map[string]Icons{"nerd": nerdIcons, "unicode": unicodeIcons, "none": noneIcons} {
		for field, v := range map[string]string{
			"Play": set.Play, "Pause": set.Pause, "Retry": set.Retry, "Warning": set.Warning,
			"Music": set.Music, "Heart": set.Heart, "Clock": set.Clock, "Close": set.Close,
			"Nature": set.Nature, "Sound": set.Sound, "Muted": set.Muted,
		} {
			if v == "" {
				t.Errorf("%s icons: %s is empty", name, field)
			}
		}
	}
}
