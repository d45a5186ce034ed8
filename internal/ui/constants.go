// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// PopupChrome is the vertical space a popup spends on its border,
	// padding, title and footer.
	PopupChrome = 10

	// MinExpandedWidth is the narrowest terminal that gets the full player
	// panel; narrower ones get the compact layout.
	MinExpandedWidth = 60

	// ChannelBarHeight is the height of the channel tab strip.
	ChannelBarHeight = 1
)
