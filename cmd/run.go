package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/safeguard/internal/app"
	"github.com/abhisek/safeguard/internal/config"
	"github.com/abhisek/safeguard/internal/content"
	"github.com/abhisek/safeguard/internal/env"
	"github.com/abhisek/safeguard/internal/learn"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/logger"
	"github.com/abhisek/safeguard/internal/notify"
	"github.com/abhisek/safeguard/internal/screen"
	"github.com/abhisek/safeguard/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads configuration, opens the store, builds dependencies, and
// launches the TUI at start (the welcome splash when nil).
func runApp(cmd *cobra.Command, start func(*env.Env) []screen.Screen) error {
	cfg := config.Load()

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, logFile)

	contentPath := resolveContentPath(cmd, cfg)
	catalog, err := content.Open(contentPath)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	log.Info().
		Str("path", contentPath).
		Str("version", catalog.Version()).
		Int("modules", len(catalog.Modules())).
		Msg("content loaded")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := location.FromSetting(cfg.Location)
	if err != nil {
		return fmt.Errorf("SAFEGUARD_LOCATION: %w", err)
	}

	e := &env.Env{
		Ctx:            cmd.Context(),
		Catalog:        catalog,
		Flags:          st.FlagRepo(),
		Location:       provider,
		Tracker:        learn.NewTracker(),
		Log:            log,
		GPSPromptDelay: cfg.GPSPromptDelay,
	}
	if cfg.ShuffleQuiz {
		e.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	return app.Run(app.Options{
		Env:   e,
		Sink:  notify.LogSink{Log: log},
		Start: start,
	})
}
