// Package dataset resolves the ratings table used by the CLI and server.
package dataset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/EZ-Api/concreteness"
	"github.com/EZ-Api/concreteness/internal/log"
	"github.com/EZ-Api/concreteness/internal/snapshot"
)

// Options selects the ratings source.
type Options struct {
	// Path to a CSV dataset; empty selects the embedded table.
	Path string

	// Cache is consulted before parsing and refreshed after. Nil disables it.
	Cache *snapshot.Cache

	Logger *log.Logger
}

// Source describes where a table came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceFile     Source = "file"
	SourceSnapshot Source = "snapshot"
)

// Load returns the ratings table for opts. Failures are fatal for callers:
// no partially loaded table is ever returned.
func Load(opts Options) (*concreteness.Table, Source, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewDiscard()
	}

	if opts.Path == "" && opts.Cache == nil {
		table, err := concreteness.DefaultTable()
		if err != nil {
			return nil, "", err
		}
		logger.Debug("ratings: %d words from embedded dataset", table.Len())
		return table, SourceEmbedded, nil
	}

	data := concreteness.EmbeddedDataset()
	source := SourceEmbedded
	if opts.Path != "" {
		raw, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, "", fmt.Errorf("reading ratings dataset: %w", err)
		}
		data = raw
		source = SourceFile
	}

	key := snapshot.KeyFor(data)
	table, ok, err := opts.Cache.Get(key)
	if err != nil {
		logger.Error("ratings snapshot unusable, reparsing: %v", err)
	}
	if ok {
		logger.Debug("ratings: %d words from snapshot %s", table.Len(), key)
		return table, SourceSnapshot, nil
	}

	table, err = concreteness.LoadTable(bytes.NewReader(data))
	if err != nil {
		if opts.Path != "" {
			return nil, "", fmt.Errorf("loading %s: %w", opts.Path, err)
		}
		return nil, "", err
	}
	logger.Debug("ratings: %d words from %s dataset", table.Len(), source)

	if err := opts.Cache.Put(key, table); err != nil {
		logger.Error("writing ratings snapshot: %v", err)
	}
	return table, source, nil
}
