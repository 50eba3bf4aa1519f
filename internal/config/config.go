// Package config loads CLI and server settings from a TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/EZ-Api/concreteness"
)

// FileName is the config file searched for by Discover.
const FileName = ".concreteness.toml"

// Config holds every setting.
type Config struct {
	Ratings  RatingsConfig  `toml:"ratings"`
	Analysis AnalysisConfig `toml:"analysis"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

// RatingsConfig selects the ratings dataset and its snapshot cache.
type RatingsConfig struct {
	// Path to a CSV dataset; empty selects the embedded table.
	Path string `toml:"path"`
	// Snapshot enables the msgpack snapshot cache.
	Snapshot bool `toml:"snapshot"`
	// SnapshotDir overrides the cache directory.
	SnapshotDir string `toml:"snapshot_dir"`
}

// AnalysisConfig holds the default analysis options and worker limits.
type AnalysisConfig struct {
	IncludeStopwords bool    `toml:"include_stopwords"`
	Denominator      string  `toml:"denominator"`
	VeryConcrete     float64 `toml:"very_concrete_threshold"`
	VeryAbstract     float64 `toml:"very_abstract_threshold"`
	CacheSize        int     `toml:"cache_size"`
	Jobs             int     `toml:"jobs"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig sets the log level (debug, info or error).
type LogConfig struct {
	Level string `toml:"level"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Ratings: RatingsConfig{Snapshot: true},
		Analysis: AnalysisConfig{
			Denominator:  concreteness.DenominatorRated.String(),
			VeryConcrete: concreteness.DefaultVeryConcrete,
			VeryAbstract: concreteness.DefaultVeryAbstract,
			CacheSize:    256,
			Jobs:         runtime.NumCPU(),
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// path (skipped when path is empty), then CONCRETENESS_* environment
// variables. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		if cfg.Ratings.Path != "" && !filepath.IsAbs(cfg.Ratings.Path) {
			cfg.Ratings.Path = filepath.Join(filepath.Dir(path), cfg.Ratings.Path)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Ratings.Path = getEnv("CONCRETENESS_RATINGS", cfg.Ratings.Path)
	cfg.Ratings.Snapshot = getEnvBool("CONCRETENESS_SNAPSHOT", cfg.Ratings.Snapshot)
	cfg.Ratings.SnapshotDir = getEnv("CONCRETENESS_SNAPSHOT_DIR", cfg.Ratings.SnapshotDir)
	cfg.Analysis.IncludeStopwords = getEnvBool("CONCRETENESS_INCLUDE_STOPWORDS", cfg.Analysis.IncludeStopwords)
	cfg.Analysis.Denominator = getEnv("CONCRETENESS_DENOMINATOR", cfg.Analysis.Denominator)
	cfg.Analysis.VeryConcrete = getEnvFloat("CONCRETENESS_VERY_CONCRETE", cfg.Analysis.VeryConcrete)
	cfg.Analysis.VeryAbstract = getEnvFloat("CONCRETENESS_VERY_ABSTRACT", cfg.Analysis.VeryAbstract)
	cfg.Analysis.CacheSize = getEnvInt("CONCRETENESS_CACHE_SIZE", cfg.Analysis.CacheSize)
	cfg.Analysis.Jobs = getEnvInt("CONCRETENESS_JOBS", cfg.Analysis.Jobs)
	cfg.Server.Addr = getEnv("CONCRETENESS_ADDR", cfg.Server.Addr)
	cfg.Log.Level = getEnv("CONCRETENESS_LOG_LEVEL", cfg.Log.Level)
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if _, err := concreteness.ParseDenominator(c.Analysis.Denominator); err != nil {
		return err
	}
	if c.Analysis.Jobs <= 0 {
		return fmt.Errorf("jobs must be positive, got %d", c.Analysis.Jobs)
	}
	if c.Analysis.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.Analysis.CacheSize)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}

// Options converts the analysis section into library options.
func (c *Config) Options() concreteness.Options {
	denominator, _ := concreteness.ParseDenominator(c.Analysis.Denominator)
	return concreteness.Options{
		IncludeStopwords: c.Analysis.IncludeStopwords,
		Denominator:      denominator,
		Thresholds: &concreteness.Thresholds{
			VeryConcrete: c.Analysis.VeryConcrete,
			VeryAbstract: c.Analysis.VeryAbstract,
		},
	}
}

// Discover walks up from startDir looking for FileName. It stops at a
// directory containing .git or at the filesystem root and returns "" when
// nothing was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
