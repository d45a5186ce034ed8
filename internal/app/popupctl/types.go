// Package popupctl manages the modal popups drawn over the main screen.
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Settings
	Error
)

// Priority defines which popup takes keys first (highest priority first).
var Priority = []Type{
	Error,
	Help,
	Settings,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Settings,
	Help,
	Error,
}
