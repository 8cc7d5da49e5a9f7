// SPDX-License-Identifier: MIT

// Package config resolves dicebalance CLI settings from the environment and
// command-line flags. Environment values are defaults; flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/dicebalance/descriptor"
)

var (
	// ErrNoInput means neither -die, -file nor -all was given.
	ErrNoInput = errors.New("config: one of -die, -file or -all is required")

	// ErrConflictingInput means more than one die source was given.
	ErrConflictingInput = errors.New("config: -die, -file and -all are mutually exclusive")

	// ErrBadWorkers means the worker count is below one.
	ErrBadWorkers = errors.New("config: workers must be at least 1")

	// ErrBadDump means -dump names an unknown descriptor format.
	ErrBadDump = errors.New("config: -dump must be yaml or die")
)

// envConfig holds the environment-sourced defaults.
type envConfig struct {
	Workers      int           `env:"DICEBALANCE_WORKERS" envDefault:"1"`
	CacheDir     string        `env:"DICEBALANCE_CACHE_DIR"`
	OTelEndpoint string        `env:"DICEBALANCE_OTEL_ENDPOINT"`
	Timeout      time.Duration `env:"DICEBALANCE_TIMEOUT" envDefault:"0s"`
}

// Config is the resolved CLI configuration.
type Config struct {
	Die          string        // catalog name such as "d6"
	File         string        // descriptor file (.yaml, .yml, .die)
	All          bool          // balance every catalog die
	Workers      int           // optimizer workers
	Progress     int           // log every n candidates at V(2); 0 disables
	CacheDir     string        // badger directory; empty disables the cache
	NoCache      bool          // skip the cache even when CacheDir is set
	OTelEndpoint string        // OTLP/HTTP endpoint; empty disables tracing
	Timeout      time.Duration // overall deadline; 0 means none
	ListCorners  bool          // print corner rings with their weights
	Dump         string        // print the descriptor in this format and exit
}

// UseCache reports whether results should be read from and written to disk.
func (c Config) UseCache() bool {
	return c.CacheDir != "" && !c.NoCache
}

// ParseEnv parses environment variables into the provided struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// ParseConfig reads the environment, registers flags on fs and parses args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var raw envConfig
	if err := ParseEnv(&raw); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Workers:      raw.Workers,
		CacheDir:     raw.CacheDir,
		OTelEndpoint: raw.OTelEndpoint,
		Timeout:      raw.Timeout,
	}

	fs.StringVar(&cfg.Die, "die", "", "catalog die to balance (d4, d6, d8, d10, d12, d20)")
	fs.StringVar(&cfg.File, "file", "", "descriptor file to balance (.yaml, .yml or .die)")
	fs.BoolVar(&cfg.All, "all", false, "balance every catalog die")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "optimizer worker goroutines")
	fs.IntVar(&cfg.Progress, "progress", 0, "log progress every n candidates (needs -v=2)")
	fs.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "result cache directory (default: DICEBALANCE_CACHE_DIR)")
	fs.BoolVar(&cfg.NoCache, "no-cache", false, "ignore the result cache")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall deadline (0 = none)")
	fs.BoolVar(&cfg.ListCorners, "corners", false, "list every corner with its face values")
	fs.StringVar(&cfg.Dump, "dump", "", "print the descriptor as yaml or die and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	sources := 0
	for _, set := range []bool{c.Die != "", c.File != "", c.All} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return ErrNoInput
	case sources > 1:
		return ErrConflictingInput
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadWorkers, c.Workers)
	}
	if c.Progress < 0 {
		return fmt.Errorf("config: progress must not be negative (got %d)", c.Progress)
	}
	switch descriptor.Format(c.Dump) {
	case "", descriptor.YAML, descriptor.DSL:
	default:
		return fmt.Errorf("%w (got %q)", ErrBadDump, c.Dump)
	}

	return nil
}
