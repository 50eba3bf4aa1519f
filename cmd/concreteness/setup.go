package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EZ-Api/concreteness"
	"github.com/EZ-Api/concreteness/internal/config"
	"github.com/EZ-Api/concreteness/internal/dataset"
	"github.com/EZ-Api/concreteness/internal/log"
	"github.com/EZ-Api/concreteness/internal/snapshot"
)

const (
	appName        = "concreteness"
	configFileHint = config.FileName
)

// env is the state shared by the subcommands that analyse text.
type env struct {
	cfg      *config.Config
	logger   *log.Logger
	table    *concreteness.Table
	analyzer concreteness.Analyzer
	color    bool
}

func colorEnabled(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		out, ok := cmd.OutOrStdout().(*os.File)
		return ok && isTerminal(out), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, on or off)", colorFlag)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.Discover(wd); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if ratings, _ := cmd.Flags().GetString("ratings"); ratings != "" {
		cfg.Ratings.Path = ratings
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if noSnapshot, _ := cmd.Flags().GetBool("no-snapshot"); noSnapshot {
		cfg.Ratings.Snapshot = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads configuration and the ratings table. A table that cannot be
// loaded aborts the command.
func setup(cmd *cobra.Command) (*env, error) {
	useColor, err := colorEnabled(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	logger := log.New(log.Options{
		Level: cfg.Log.Level,
		Out:   stderr,
		Err:   stderr,
		Color: useColor,
	})

	var cache *snapshot.Cache
	if cfg.Ratings.Snapshot {
		if cache, err = openSnapshots(cfg); err != nil {
			logger.Debug("snapshot cache disabled: %v", err)
			cache = nil
		}
	}

	table, source, err := dataset.Load(dataset.Options{
		Path:   cfg.Ratings.Path,
		Cache:  cache,
		Logger: logger,
	})
	if err != nil {
		logger.Error("failed to load ratings: %v", err)
		return nil, err
	}
	logger.Debug("loaded %d ratings (%s)", table.Len(), source)

	return &env{
		cfg:      cfg,
		logger:   logger,
		table:    table,
		analyzer: concreteness.WithCache(concreteness.New(table), cfg.Analysis.CacheSize),
		color:    useColor,
	}, nil
}

// analysisOptions starts from the configured options and applies the
// analysis flags the command defines and the user set.
func (e *env) analysisOptions(cmd *cobra.Command) (concreteness.Options, error) {
	opts := e.cfg.Options()
	flags := cmd.Flags()

	if flags.Changed("stopwords") {
		v, err := flags.GetBool("stopwords")
		if err != nil {
			return opts, err
		}
		opts.IncludeStopwords = v
	}
	if flags.Changed("all-words") {
		v, err := flags.GetBool("all-words")
		if err != nil {
			return opts, err
		}
		opts.Denominator = concreteness.DenominatorFor(!v)
	}

	thresholds := concreteness.DefaultThresholds()
	if opts.Thresholds != nil {
		thresholds = *opts.Thresholds
	}
	if flags.Changed("concrete") {
		v, err := flags.GetFloat64("concrete")
		if err != nil {
			return opts, err
		}
		thresholds.VeryConcrete = v
	}
	if flags.Changed("abstract") {
		v, err := flags.GetFloat64("abstract")
		if err != nil {
			return opts, err
		}
		thresholds.VeryAbstract = v
	}
	opts.Thresholds = &thresholds

	if flags.Lookup("explain") != nil {
		v, err := flags.GetBool("explain")
		if err != nil {
			return opts, err
		}
		opts.Explain = v
	}
	return opts, nil
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stopwords", false, "keep English stopwords")
	cmd.Flags().Bool("all-words", false, "divide by every token instead of rated tokens only")
	cmd.Flags().Float64("concrete", concreteness.DefaultVeryConcrete, "minimum rating counted as very concrete")
	cmd.Flags().Float64("abstract", concreteness.DefaultVeryAbstract, "maximum rating counted as very abstract")
}

func openSnapshots(cfg *config.Config) (*snapshot.Cache, error) {
	if cfg.Ratings.SnapshotDir != "" {
		return snapshot.OpenDir(cfg.Ratings.SnapshotDir)
	}
	return snapshot.Open(appName)
}
