package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bio-runner/internal/config"
)

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file only warnings reach stderr so the alt screen stays
// clean; with one, everything down to the chosen level goes to the file.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
		level            = log.WarnLevel
	)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer, level = f, f, log.DebugLevel
	}

	if flagLogLevel != "" {
		parsed, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			closer.Close()
			return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig resolves the runner config and applies the global flags.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	cfg, src, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return cfg, fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}

	logger.Debug("config loaded",
		"source", src,
		"difficulty", preset,
		"frame_rate", cfg.Timing.FrameRate,
		"frames_per_point", cfg.Timing.FramesPerScoreTick(),
	)
	return cfg, nil
}

// seed returns --seed, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
