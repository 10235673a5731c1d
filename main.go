package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numbermatch/assets"
	"github.com/robalobadob/numbermatch/internal/config"
	"github.com/robalobadob/numbermatch/internal/layout"
	"github.com/robalobadob/numbermatch/internal/session"
	"github.com/robalobadob/numbermatch/internal/store"
	"github.com/robalobadob/numbermatch/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	ctx := context.Background()
	st, closeStore := openStore(cfg)
	defer closeStore()

	ctl, err := session.New(ctx, session.GameContext{
		Store:   st,
		Clock:   session.ClockFunc(time.Now),
		Logger:  log.Logger,
		Grid:    cfg.GridOptions(),
		NewRand: cfg.RandSource(time.Now),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid grid configuration")
	}

	ebiten.SetWindowSize(layout.ScreenW, layout.ScreenH)
	ebiten.SetWindowTitle("Space Number Match Mission")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	game := ui.New(ctx, ctl, ui.LoadAssets(cfg.AssetsDir, cfg.Music, log.Logger), log.Logger)
	log.Info().
		Int("rows", cfg.GridRows).
		Int("cols", cfg.GridCols).
		Bool("daily", cfg.DailyMode).
		Int("best", ctl.Best()).
		Msg("starting number match")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// openStore picks SQLite when BEST_SCORE_DSN is set, the plain file otherwise.
// A database that cannot be opened falls back to the file store.
func openStore(cfg config.Config) (store.Store, func()) {
	noop := func() {}
	if cfg.BestScoreDSN == "" {
		return store.NewFileStore(cfg.BestScoreFile), noop
	}
	db, err := store.OpenDB(cfg.BestScoreDSN)
	if err == nil {
		err = store.Migrate(db, assets.Migrations)
	}
	if err != nil {
		log.Error().Err(err).Str("dsn", cfg.BestScoreDSN).Msg("best-score database unavailable, using file")
		if db != nil {
			_ = db.Close()
		}
		return store.NewFileStore(cfg.BestScoreFile), noop
	}
	return store.NewSQLiteStore(db), func() { _ = db.Close() }
}
