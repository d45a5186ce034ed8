// Streamcheck connects to every configured channel with the volume muted and
// reports whether the stream starts and which title it announces.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/radiotedu/radiotedu-tui/internal/channel"
	"github.com/radiotedu/radiotedu-tui/internal/config"
	"github.com/radiotedu/radiotedu-tui/internal/player"
)

const (
	startTimeout = 15 * time.Second
	titleWait    = 8 * time.Second
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	registry, err := channel.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build channel list")
	}

	failed := 0
	for _, ch := range registry.All() {
		if !check(ch) {
			failed++
		}
	}
	log.Info().Int("channels", registry.Len()).Int("failed", failed).Msg("Check complete")
	if failed > 0 {
		os.Exit(1)
	}
}

func check(ch channel.Channel) bool {
	engine := player.NewStreamEngine()
	defer engine.Close()
	engine.SetVolume(0)
	engine.Load(ch.StreamURL)

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	started := time.Now()
	if err := engine.Play(ctx); err != nil {
		log.Error().Err(err).Str("channel", ch.ID).Str("url", ch.StreamURL).Msg("Stream did not start")
		return false
	}
	latency := time.Since(started)

	title := waitForTitle(engine.Events(), titleWait)
	log.Info().
		Str("channel", ch.ID).
		Dur("startup", latency).
		Str("title", title).
		Int64("bytes", engine.Info().Received).
		Msg("Stream OK")
	return true
}

func waitForTitle(events <-chan player.Event, wait time.Duration) string {
	deadline := time.After(wait)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return ""
			}
			if ev.Kind == player.EventTitle {
				return ev.Title
			}
		case <-deadline:
			return ""
		}
	}
}
