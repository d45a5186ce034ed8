package mpris

import (
	"os"
	"path/filepath"
)

// ArtURL returns a file:// URL for a channel's background image, or empty
// when the channel has no readable image.
func ArtURL(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if fi, err := os.Stat(abs); err != nil || fi.IsDir() {
		return ""
	}
	return "file://" + abs
}
