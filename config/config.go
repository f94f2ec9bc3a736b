// Package config loads run settings for the labyrinth command.
//
// Sources are layered, later ones winning:
//
//  1. Default()
//  2. an optional TOML file
//  3. an optional .env file
//  4. LABYRINTH_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/labyrinth/solve"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment key, e.g. LABYRINTH_ROWS.
const EnvPrefix = "LABYRINTH_"

// DotEnvFile is the dotenv file Load reads from the working directory.
const DotEnvFile = ".env"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings of one run.
type Config struct {
	Rows        int    `toml:"rows"`        // maze height in cells
	Cols        int    `toml:"cols"`        // maze width in cells
	Seed        int64  `toml:"seed"`        // generator seed, 0 = fixed default
	MinCost     int    `toml:"min_cost"`    // lowest edge cost
	MaxCost     int    `toml:"max_cost"`    // highest edge cost
	Directional bool   `toml:"directional"` // independent cost per edge direction
	Algorithm   string `toml:"algorithm"`   // strategy or mode name
	Color       bool   `toml:"color"`       // colour the overlay
	ShowCosts   bool   `toml:"show_costs"`  // print edge costs in the maze
	Format      string `toml:"format"`      // text or json
}

// Default returns a 10×10 maze, costs 1..9, all strategies, text output.
func Default() Config {
	return Config{
		Rows:      10,
		Cols:      10,
		MinCost:   1,
		MaxCost:   9,
		Algorithm: "advanced",
		Format:    FormatText,
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load layers defaults, the TOML file at path (skipped when path is
// empty), ./.env when present and the process environment.
func Load(path string) (Config, error) {
	return LoadFrom(path, DotEnvFile, os.LookupEnv)
}

// LoadFrom is Load with explicit dotenv file and environment lookup.
// A missing dotenv file is not an error; a missing TOML file is.
// Variables already set in the environment take precedence over dotenv.
func LoadFrom(path, dotenv string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}

	vars := map[string]string{}
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if vars, err = godotenv.Read(dotenv); err != nil {
				return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, dotenv, err)
			}
		}
	}
	env := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overrides fields from LABYRINTH_* variables.
func (c *Config) applyEnv(env LookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &c.Rows},
		{"COLS", &c.Cols},
		{"MIN_COST", &c.MinCost},
		{"MAX_COST", &c.MaxCost},
	}
	for _, f := range ints {
		if v, ok := env(EnvPrefix + f.key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, f.key, err)
			}
			*f.dst = n
		}
	}

	if v, ok := env(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Seed = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"DIRECTIONAL", &c.Directional},
		{"COLOR", &c.Color},
		{"SHOW_COSTS", &c.ShowCosts},
	}
	for _, f := range bools {
		if v, ok := env(EnvPrefix + f.key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s must be a boolean: %v", ErrInvalidConfig, EnvPrefix, f.key, err)
			}
			*f.dst = b
		}
	}

	if v, ok := env(EnvPrefix + "ALGORITHM"); ok {
		c.Algorithm = strings.TrimSpace(v)
	}
	if v, ok := env(EnvPrefix + "FORMAT"); ok {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.MinCost < 1:
		return fmt.Errorf("%w: min cost %d below 1", ErrInvalidConfig, c.MinCost)
	case c.MaxCost < c.MinCost:
		return fmt.Errorf("%w: max cost %d below min cost %d", ErrInvalidConfig, c.MaxCost, c.MinCost)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := solve.ParseSelection(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Selection resolves Algorithm to the strategies to run.
func (c Config) Selection() ([]solve.Algorithm, error) {
	return solve.ParseSelection(c.Algorithm)
}
