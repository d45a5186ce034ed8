// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Playback
	OpPlaybackStart Op = "start playback"
	OpStreamLoad    Op = "load stream"
	OpStreamRetry   Op = "reconnect to stream"

	// Ambience
	OpNatureStart Op = "start nature sound"

	// Desktop integration
	OpNotifierOpen Op = "open notifier"
	OpMPRISStart   Op = "start media key service"

	// Display
	OpBackgroundLoad Op = "load background"

	// Startup
	OpConfigLoad Op = "load config"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
