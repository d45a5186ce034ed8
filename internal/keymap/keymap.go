package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "channel", "player", "crossfader", "pomodoro", "settings"
}

// Bindings contains the main screen bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionThankYou, []string{"L"}, "Send some love", "global"},

	// Channels
	{ActionChannelNext, []string{"tab", "l"}, "Next channel", "channel"},
	{ActionChannelPrev, []string{"shift+tab", "h"}, "Previous channel", "channel"},
	{ActionChannelSelect, []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"}, "Select channel", "channel"},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", "player"},
	{ActionRetry, []string{"r"}, "Restart stream", "player"},
	{ActionVolumeUp, []string{"+", "=", "up"}, "Volume up", "player"},
	{ActionVolumeDown, []string{"-", "down"}, "Volume down", "player"},
	{ActionVolumeStep, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}, "Set volume (0 = max)", "player"},

	// Crossfader
	{ActionToggleNature, []string{"n"}, "Add/hide nature sound", "crossfader"},
	{ActionCrossfadeMusic, []string{"[", "left"}, "Toward music", "crossfader"},
	{ActionCrossfadeNature, []string{"]", "right"}, "Toward nature", "crossfader"},
	{ActionCrossfadeMusicFine, []string{"shift+left"}, "Toward music (fine)", "crossfader"},
	{ActionCrossfadeNatureFine, []string{"shift+right"}, "Toward nature (fine)", "crossfader"},
	{ActionCrossfadeReset, []string{"\\"}, "Reset blend", "crossfader"},

	// Pomodoro
	{ActionPomodoroToggle, []string{"p", "enter"}, "Start/pause, dismiss alarm", "pomodoro"},
	{ActionPomodoroReset, []string{"R"}, "Reset timer", "pomodoro"},
	{ActionPomodoroResetCounts, []string{"C"}, "Reset counts", "pomodoro"},
	{ActionPomodoroMinimize, []string{"m"}, "Minimize/restore timer", "pomodoro"},
	{ActionPomodoroSettings, []string{"s"}, "Timer settings", "pomodoro"},
	{ActionPomodoroPreset, []string{"c"}, "Cycle preset", "pomodoro"},
	{ActionPomodoroSound, []string{"S"}, "Toggle alarm sound", "pomodoro"},
}

// Settings contains the bindings active while the timer settings are open.
var Settings = []Binding{
	{ActionSettingsNext, []string{"tab", "down"}, "Next field", "settings"},
	{ActionSettingsPrev, []string{"shift+tab", "up"}, "Previous field", "settings"},
	{ActionSettingsIncrease, []string{"+", "="}, "Add a minute", "settings"},
	{ActionSettingsDecrease, []string{"-"}, "Remove a minute", "settings"},
	{ActionSettingsApply, []string{"enter"}, "Apply value", "settings"},
	{ActionSettingsClose, []string{"esc"}, "Close settings", "settings"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, bindings := range [][]Binding{Bindings, Settings} {
		for _, kb := range bindings {
			if kb.Context == context {
				result = append(result, kb)
			}
		}
	}
	return result
}

// ChannelIndex returns the channel slot of an f-key (f1 = 0), or -1.
func ChannelIndex(key string) int {
	if len(key) != 2 || key[0] != 'f' || key[1] < '1' || key[1] > '9' {
		return -1
	}
	return int(key[1] - '1')
}

// VolumeStep returns the volume step of a digit key (0 = 10), or -1.
func VolumeStep(key string) int {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return -1
	}
	if key[0] == '0' {
		return 10
	}
	return int(key[0] - '0')
}
