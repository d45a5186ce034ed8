// Package icons holds the glyphs used by the player controls.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play    string
	Pause   string
	Retry   string
	Warning string
	Music   string
	Heart   string
	Clock   string
	Close   string
	Nature  string
	Sound   string
	Muted   string
}

var (
	nerdIcons = Icons{
		Play:    "\uf04b", // nf-fa-play
		Pause:   "\uf04c", // nf-fa-pause
		Retry:   "\uf01e", // nf-fa-repeat
		Warning: "\uf071", // nf-fa-warning
		Music:   "\uf001", // nf-fa-music
		Heart:   "\uf004", // nf-fa-heart
		Clock:   "\uf017", // nf-fa-clock_o
		Close:   "\uf00d", // nf-fa-times
		Nature:  "\uf06c", // nf-fa-leaf
		Sound:   "\uf028", // nf-fa-volume_up
		Muted:   "\uf026", // nf-fa-volume_off
	}

	unicodeIcons = Icons{
		Play:    "▶",
		Pause:   "⏸",
		Retry:   "↻",
		Warning: "⚠",
		Music:   "♫",
		Heart:   "❤",
		Clock:   "◷",
		Close:   "✕",
		Nature:  "☘",
		Sound:   "♪",
		Muted:   "∅",
	}

	noneIcons = Icons{
		Play:    ">",
		Pause:   "||",
		Retry:   "(r)",
		Warning: "!",
		Music:   "#",
		Heart:   "<3",
		Clock:   "(o)",
		Close:   "x",
		Nature:  "~",
		Sound:   "on",
		Muted:   "off",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon style. Unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// PlayPause returns the control glyph for the given state.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// SoundToggle returns the alarm sound glyph.
func SoundToggle(enabled bool) string {
	if enabled {
		return current.Sound
	}
	return current.Muted
}
