// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionHelp     Action = "help"
	ActionThankYou Action = "thank_you"

	// Channel switching
	ActionChannelNext   Action = "channel_next"
	ActionChannelPrev   Action = "channel_prev"
	ActionChannelSelect Action = "channel_select" // f1..f9, index from the key

	// Player actions
	ActionPlayPause  Action = "play_pause"
	ActionRetry      Action = "retry"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionVolumeStep Action = "volume_step" // 1..9, 0 = step 10

	// Crossfader actions
	ActionToggleNature        Action = "toggle_nature"
	ActionCrossfadeMusic      Action = "crossfade_music"
	ActionCrossfadeNature     Action = "crossfade_nature"
	ActionCrossfadeMusicFine  Action = "crossfade_music_fine"
	ActionCrossfadeNatureFine Action = "crossfade_nature_fine"
	ActionCrossfadeReset      Action = "crossfade_reset"

	// Pomodoro actions
	ActionPomodoroToggle      Action = "pomodoro_toggle" // start/pause, dismiss alarm
	ActionPomodoroReset       Action = "pomodoro_reset"
	ActionPomodoroResetCounts Action = "pomodoro_reset_counts"
	ActionPomodoroMinimize    Action = "pomodoro_minimize"
	ActionPomodoroSettings    Action = "pomodoro_settings"
	ActionPomodoroPreset      Action = "pomodoro_preset"
	ActionPomodoroSound       Action = "pomodoro_sound"

	// Pomodoro settings actions
	ActionSettingsNext     Action = "settings_next"
	ActionSettingsPrev     Action = "settings_prev"
	ActionSettingsIncrease Action = "settings_increase"
	ActionSettingsDecrease Action = "settings_decrease"
	ActionSettingsApply    Action = "settings_apply"
	ActionSettingsClose    Action = "settings_close"
)
