package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/alarm"
	"github.com/radiotedu/radiotedu-tui/internal/app"
	"github.com/radiotedu/radiotedu-tui/internal/background"
	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/config"
	"github.com/radiotedu/radiotedu-tui/internal/errmsg"
	"github.com/radiotedu/radiotedu-tui/internal/haptic"
	"github.com/radiotedu/radiotedu-tui/internal/icons"
	"github.com/radiotedu/radiotedu-tui/internal/logging"
	"github.com/radiotedu/radiotedu-tui/internal/mpris"
	"github.com/radiotedu/radiotedu-tui/internal/nature"
	"github.com/radiotedu/radiotedu-tui/internal/notify"
	"github.com/radiotedu/radiotedu-tui/internal/player"
	"github.com/radiotedu/radiotedu-tui/internal/pomodoro"
	"github.com/radiotedu/radiotedu-tui/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCloser, err := logging.Setup(cfg.GetLogConfig())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logCloser.Close()

	// Audio backends write to fd 2 directly; keep that off the screen.
	if err := stderr.Start(func(line string) {
		log.Debug().Str("source", "stderr").Msg(line)
	}); err != nil {
		log.Warn().Err(err).Msg("Could not capture stderr")
	}
	defer stderr.Stop()

	icons.Init(cfg.GetIconStyle())

	registry, err := channel.FromConfig(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	deps := app.Deps{
		Config:   cfg,
		Registry: registry,
		Engine:   player.NewStreamEngine(),
		Timer:    newTimer(cfg),
		Signals:  background.SignalsFromEnv(os.Getenv),
	}
	if cfg.NatureEnabled() {
		deps.Nature = nature.New(cfg.AssetPath(cfg.Nature.File))
	}
	if cfg.MPRISEnabled() {
		if remote, err := mpris.New(); err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			deps.Remote = remote
		}
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msg("Exited cleanly")
	return nil
}

// newTimer builds the pomodoro timer with its alarm side effects.
func newTimer(cfg *config.Config) *pomodoro.Timer {
	pc := cfg.GetPomodoroConfig()
	presets := make([]pomodoro.Preset, len(pc.Presets))
	for i, p := range pc.Presets {
		presets[i] = pomodoro.Preset{Focus: p.Focus, Break: p.Break}
	}

	return pomodoro.New(pomodoro.Options{
		FocusMinutes: pc.FocusMinutes,
		BreakMinutes: pc.BreakMinutes,
		SoundEnabled: *pc.Sound,
		Presets:      presets,
		Alert:        alarm.New(time.Duration(pc.AlarmSeconds) * time.Second),
		Notifier:     newNotifier(cfg),
		Haptics:      haptic.NewBell(os.Stdout),
	})
}

func newNotifier(cfg *config.Config) pomodoro.NotificationSink {
	nc := cfg.GetNotificationsConfig()
	if !*nc.Enabled {
		return nil
	}
	n, err := notify.New()
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotifierOpen, err))
		return nil
	}
	return notify.NewSink(n, nc.Timeout)
}
