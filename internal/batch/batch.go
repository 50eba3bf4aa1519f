// Package batch analyses many documents concurrently.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/EZ-Api/concreteness"
	"github.com/EZ-Api/concreteness/internal/document"
)

// Item is the outcome for one input path. Err is set when the file could
// not be read; Result is zero in that case.
type Item struct {
	Path   string
	Result concreteness.Result
	Err    error
}

// Options configures Run.
type Options struct {
	Analysis concreteness.Options
	Format   document.Format
	// Jobs caps concurrent workers. Zero or less uses GOMAXPROCS.
	Jobs int
}

// Run reads and analyses every path. Items keep the input order. Read
// errors are recorded per item; only context cancellation fails the run.
func Run(ctx context.Context, analyzer concreteness.Analyzer, paths []string, opts Options) ([]Item, error) {
	items := make([]Item, len(paths))
	if len(paths) == 0 {
		return items, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i].Path = path
			doc, err := document.Read(path, opts.Format)
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Result = analyzer.Analyze(doc.Text, opts.Analysis)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Texts analyses in-memory texts concurrently, keeping input order.
func Texts(ctx context.Context, analyzer concreteness.Analyzer, texts []string, opts concreteness.Options, jobs int) ([]concreteness.Result, error) {
	results := make([]concreteness.Result, len(texts))
	if len(texts) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(texts)))
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = analyzer.Analyze(text, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
