package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "radiotedu"

type Config struct {
	DefaultChannel string          `koanf:"default_channel"`
	AssetsDir      string          `koanf:"assets_dir"`   // directory holding background images and videos
	MobileVideo    string          `koanf:"mobile_video"` // background used for video channels on narrow screens
	MobileWidth    int             `koanf:"mobile_width"` // terminal columns at or below which the screen counts as mobile
	Channels       []ChannelConfig `koanf:"channels"`

	Player        PlayerConfig        `koanf:"player"`
	Crossfade     CrossfadeConfig     `koanf:"crossfade"`
	Pomodoro      PomodoroConfig      `koanf:"pomodoro"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Nature        NatureConfig        `koanf:"nature"`
	Log           LogConfig           `koanf:"log"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	UI            UIConfig            `koanf:"ui"`
}

// ChannelConfig describes one radio channel.
type ChannelConfig struct {
	ID         string `koanf:"id"`
	Name       string `koanf:"name"`
	StreamURL  string `koanf:"stream_url"`
	Background string `koanf:"background"` // file name relative to assets_dir, or absolute
	IsImage    bool   `koanf:"is_image"`
	Theme      string `koanf:"theme"` // defaults to the channel id
}

// PlayerConfig holds stream playback settings.
type PlayerConfig struct {
	Volume *float64 `koanf:"volume"` // initial volume 0.0-1.0 (default: 0.7)
}

// CrossfadeConfig holds the music/nature blend settings.
type CrossfadeConfig struct {
	Initial *int `koanf:"initial"` // 0 = only music, 100 = only nature (default: 50)
}

// PomodoroConfig holds focus timer settings.
type PomodoroConfig struct {
	FocusMinutes int            `koanf:"focus_minutes"` // default: 25
	BreakMinutes int            `koanf:"break_minutes"` // default: 5
	Sound        *bool          `koanf:"sound"`         // alert tone on phase end (default: true)
	AlarmSeconds int            `koanf:"alarm_seconds"` // alert tone length (default: 3)
	Presets      []PresetConfig `koanf:"presets"`
}

// PresetConfig is a focus/break duration pair selectable from the timer.
type PresetConfig struct {
	Focus int `koanf:"focus"`
	Break int `koanf:"break"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
	Timeout int32 `koanf:"timeout"` // ms, default: 5000
}

// NatureConfig holds the ambient sound settings.
type NatureConfig struct {
	File    string `koanf:"file"`    // mp3 loop; generated rain when empty
	Enabled *bool  `koanf:"enabled"` // default: true
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/radiotedu/radiotedu.log
}

// MPRISConfig holds media key integration settings.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// UIConfig holds display settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // nerd, unicode, none (default: unicode)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.AssetsDir = expandPath(cfg.AssetsDir)
	cfg.Nature.File = expandPath(cfg.Nature.File)
	cfg.Log.File = expandPath(cfg.Log.File)
	for i := range cfg.Channels {
		cfg.Channels[i].StreamURL = strings.TrimSpace(cfg.Channels[i].StreamURL)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/radiotedu/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultChannels is the built-in lineup used when no channels are configured.
var DefaultChannels = []ChannelConfig{
	{
		ID:         "jazz",
		Name:       "Jazz",
		StreamURL:  "https://stream.radiotedu.com/cazz",
		Background: "jazz-background.jpg",
		IsImage:    true,
		Theme:      "jazz",
	},
	{
		ID:         "lofi",
		Name:       "Lo-Fi",
		StreamURL:  "https://stream.radiotedu.com/lofi",
		Background: "VHS_Cassette_Player_Loop_Generation.mp4",
		Theme:      "lofi",
	},
	{
		ID:         "classical",
		Name:       "Classical",
		StreamURL:  "https://stream.radiotedu.com/classical",
		Background: "classical.mp4",
		Theme:      "classical",
	},
}

const (
	defaultChannelID   = "lofi"
	defaultMobileVideo = "VHS_Cassette_Player_Loop_Generation.mp4"
	defaultMobileWidth = 80
)

// GetChannels returns the configured channels, or the built-in lineup.
// Relative backgrounds are resolved against assets_dir and a missing theme
// falls back to the channel id.
func (c *Config) GetChannels() []ChannelConfig {
	src := c.Channels
	if len(src) == 0 {
		src = DefaultChannels
	}

	out := make([]ChannelConfig, len(src))
	for i, ch := range src {
		if ch.Theme == "" {
			ch.Theme = ch.ID
		}
		if ch.Name == "" {
			ch.Name = ch.ID
		}
		ch.Background = c.AssetPath(ch.Background)
		out[i] = ch
	}
	return out
}

// GetDefaultChannel returns the id of the channel selected at startup.
func (c *Config) GetDefaultChannel() string {
	if c.DefaultChannel != "" {
		return c.DefaultChannel
	}
	return defaultChannelID
}

// GetMobileVideo returns the resolved path of the mobile background video.
func (c *Config) GetMobileVideo() string {
	if c.MobileVideo == "" {
		return c.AssetPath(defaultMobileVideo)
	}
	return c.AssetPath(c.MobileVideo)
}

// GetMobileWidth returns the column threshold for the mobile layout.
func (c *Config) GetMobileWidth() int {
	if c.MobileWidth <= 0 {
		return defaultMobileWidth
	}
	return c.MobileWidth
}

// AssetPath resolves an asset name against assets_dir.
func (c *Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.AssetsDir == "" {
		return expandPath(name)
	}
	return filepath.Join(c.AssetsDir, name)
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.Volume == nil || *cfg.Volume < 0 || *cfg.Volume > 1 {
		v := 0.7
		cfg.Volume = &v
	}
	return cfg
}

// GetCrossfadeConfig returns the crossfade configuration with defaults applied.
func (c *Config) GetCrossfadeConfig() CrossfadeConfig {
	cfg := c.Crossfade
	if cfg.Initial == nil {
		v := 50
		cfg.Initial = &v
	}
	if *cfg.Initial < 0 || *cfg.Initial > 100 {
		v := min(max(*cfg.Initial, 0), 100)
		cfg.Initial = &v
	}
	return cfg
}

// GetPomodoroConfig returns the pomodoro configuration with defaults applied.
func (c *Config) GetPomodoroConfig() PomodoroConfig {
	cfg := c.Pomodoro
	if cfg.FocusMinutes < 1 || cfg.FocusMinutes > 120 {
		cfg.FocusMinutes = 25
	}
	if cfg.BreakMinutes < 1 || cfg.BreakMinutes > 120 {
		cfg.BreakMinutes = 5
	}
	if cfg.Sound == nil {
		t := true
		cfg.Sound = &t
	}
	if cfg.AlarmSeconds <= 0 || cfg.AlarmSeconds > 30 {
		cfg.AlarmSeconds = 3
	}

	presets := make([]PresetConfig, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		if p.Focus < 1 || p.Focus > 120 || p.Break < 1 || p.Break > 120 {
			continue
		}
		presets = append(presets, p)
	}
	if len(presets) == 0 {
		presets = []PresetConfig{{Focus: 25, Break: 5}, {Focus: 50, Break: 10}}
	}
	cfg.Presets = presets

	return cfg
}

// GetNotificationsConfig returns the notification configuration with defaults applied.
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	cfg := c.Notifications
	if cfg.Enabled == nil {
		t := true
		cfg.Enabled = &t
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5000
	}
	return cfg
}

// NatureEnabled reports whether the ambient sound is available.
func (c *Config) NatureEnabled() bool {
	return c.Nature.Enabled == nil || *c.Nature.Enabled
}

// MPRISEnabled reports whether media key integration should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}

// GetIconStyle returns the configured icon style.
func (c *Config) GetIconStyle() string {
	switch c.UI.Icons {
	case "nerd", "unicode", "none":
		return c.UI.Icons
	default:
		return "unicode"
	}
}
