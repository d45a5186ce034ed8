// Package background chooses the media drawn behind the player.
package background

import (
	"os"
	"regexp"
	"strings"

	"github.com/radiotedu/radiotedu-tui/internal/channel"
)

var mobileAgent = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)

// DefaultMobileWidth is the column count at or below which the screen is
// treated as mobile.
const DefaultMobileWidth = 80

// Signals are the device hints used to pick a layout.
type Signals struct {
	UserAgent string
	Width     int
}

// Kind is the media type of a background.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
)

func (k Kind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "image"
}

// Media is the selected background asset.
type Media struct {
	Path string
	Kind Kind
}

// IsMobile reports whether the signals describe a small or mobile device.
// A zero width means the size is not known yet.
func IsMobile(sig Signals, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultMobileWidth
	}
	if mobileAgent.MatchString(sig.UserAgent) {
		return true
	}
	return sig.Width > 0 && sig.Width <= threshold
}

// Select picks the background for ch. Image channels always show their
// image; video channels swap to mobileVideo on mobile devices.
func Select(ch channel.Channel, mobile bool, mobileVideo string) Media {
	if ch.IsImage {
		return Media{Path: ch.Background, Kind: KindImage}
	}
	if mobile && mobileVideo != "" {
		return Media{Path: mobileVideo, Kind: KindVideo}
	}
	return Media{Path: ch.Background, Kind: KindVideo}
}

// SignalsFromEnv derives a user agent string from the terminal environment.
// RADIOTEDU_USER_AGENT overrides everything; Termux reports as Android.
func SignalsFromEnv(getenv func(string) string) Signals {
	if getenv == nil {
		getenv = os.Getenv
	}
	if ua := strings.TrimSpace(getenv("RADIOTEDU_USER_AGENT")); ua != "" {
		return Signals{UserAgent: ua}
	}

	var parts []string
	if v := getenv("TERMUX_VERSION"); v != "" {
		parts = append(parts, "Termux/"+v, "Android")
	}
	if p := getenv("TERM_PROGRAM"); p != "" {
		parts = append(parts, p)
	}
	if term := getenv("TERM"); term != "" {
		parts = append(parts, term)
	}
	return Signals{UserAgent: strings.Join(parts, " ")}
}
