package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cvtracking/sirpf-go/internal/config"
	"github.com/cvtracking/sirpf-go/internal/scene"
	"github.com/cvtracking/sirpf-go/sirpf"
)

func main() {
	configDir := flag.String("config", ".", "directory containing tracker.cfg.json")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Msg("can't load configuration")
	}
	level, err := zerolog.ParseLevel(config.LogLevel())
	if err != nil {
		log.Fatal().Err(err).Str("logLevel", config.LogLevel()).Msg("unknown log level")
	}
	log = log.Level(level)

	cfg := config.FilterConfig()
	sceneCfg := config.SceneConfig()
	out := config.OutputConfig()

	source := scene.NewSource(
		cfg.FrameWidth, cfg.FrameHeight,
		sceneCfg.BlockSize, sceneCfg.Frames,
		cfg.TargetColor, sceneCfg.Background,
		sceneCfg.Speed, sceneCfg.Seed,
	)
	renderer, err := scene.NewPPMRenderer(out.Dir, cfg.FrameWidth, cfg.FrameHeight, out.Every)
	if err != nil {
		log.Fatal().Err(err).Msg("can't create renderer")
	}

	opts := []sirpf.TrackerOption{sirpf.WithLogger(log)}
	if config.Smoothing() {
		opts = append(opts, sirpf.WithSmoothing())
	}
	tracker, err := sirpf.NewTracker(cfg, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("can't create tracker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tracker.Run(ctx, source, renderer); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("tracking run failed")
	}
	log.Info().
		Int("imagesWritten", renderer.Written()).
		Int("estimateX", tracker.Estimate().X).
		Int("estimateY", tracker.Estimate().Y).
		Msg("done")
}
