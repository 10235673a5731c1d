// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is loaded first (development), then
// variables are bound onto Config through struct tags.
package config

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/numbermatch/internal/daily"
	"github.com/robalobadob/numbermatch/internal/grid"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"true"`

	GridRows int    `env:"GRID_ROWS" envDefault:"5"`
	GridCols int    `env:"GRID_COLS" envDefault:"5"`
	GridSeed uint64 `env:"GRID_SEED"` // 0 = random per session

	DailyMode bool   `env:"DAILY_MODE" envDefault:"false"`
	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	BestScoreFile string `env:"BEST_SCORE_FILE" envDefault:"max_score.txt"`
	BestScoreDSN  string `env:"BEST_SCORE_DSN"` // SQLite file; overrides BEST_SCORE_FILE

	AssetsDir string `env:"ASSETS_DIR" envDefault:"."`
	Music     bool   `env:"MUSIC"      envDefault:"true"`
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse binds the process environment onto Config without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// GridOptions maps the configured dimensions onto the fixed pair/value rules.
func (c Config) GridOptions() grid.Options {
	opts := grid.DefaultOptions()
	opts.Rows, opts.Cols = c.GridRows, c.GridCols
	return opts
}

// RandSource returns the per-session RNG factory: a fixed GRID_SEED, the
// day's seed in daily mode, or nil to let the session pick a random seed.
func (c Config) RandSource(now func() time.Time) func() *rand.Rand {
	switch {
	case c.GridSeed != 0:
		seed := c.GridSeed
		return func() *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }
	case c.DailyMode:
		salt := c.DailySalt
		return func() *rand.Rand {
			s1, s2 := daily.Seed(now(), salt)
			return rand.New(rand.NewPCG(s1, s2))
		}
	default:
		return nil
	}
}
