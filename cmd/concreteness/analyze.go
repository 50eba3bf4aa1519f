package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EZ-Api/concreteness/internal/batch"
	"github.com/EZ-Api/concreteness/internal/document"
	"github.com/EZ-Api/concreteness/internal/report"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [PATH|GLOB...]",
		Short: "Analyse files and report every metric",
		Long: `Analyze reads each file (globs such as docs/**/*.md are expanded) and reports
token counts, the average rating and the concrete/abstract ratio. Markdown
files are reduced to their prose first. With no arguments stdin is analysed.`,
		RunE: runAnalyze,
	}
	addAnalysisFlags(cmd)
	cmd.Flags().String("format", "text", "output format (text|json|yaml)")
	cmd.Flags().Bool("markdown", false, "treat every input as markdown")
	cmd.Flags().Int("jobs", 0, "parallel workers (default from config)")
	cmd.Flags().Bool("explain", false, "include the per-token breakdown")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return fmt.Errorf("failed to get markdown flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	formatter, err := report.New(format, e.color)
	if err != nil {
		return err
	}
	opts, err := e.analysisOptions(cmd)
	if err != nil {
		return err
	}
	docFormat := document.FormatAuto
	if markdown {
		docFormat = document.FormatMarkdown
	}
	if jobs <= 0 {
		jobs = e.cfg.Analysis.Jobs
	}

	var records []report.Record
	if len(args) == 0 {
		text, err := readText(cmd, nil)
		if err != nil {
			return err
		}
		if markdown {
			text = document.PlainText([]byte(text))
		}
		records = append(records, report.Record{Name: "-", Result: e.analyzer.Analyze(text, opts)})
	} else {
		paths, err := document.Expand(args)
		if err != nil {
			return err
		}
		e.logger.Debug("analysing %d files with %d workers", len(paths), jobs)
		items, err := batch.Run(cmd.Context(), e.analyzer, paths, batch.Options{
			Analysis: opts,
			Format:   docFormat,
			Jobs:     jobs,
		})
		if err != nil {
			return err
		}
		for _, item := range items {
			records = append(records, report.Record{Name: item.Path, Result: item.Result, Err: item.Err})
		}
	}

	if err := formatter.Format(cmd.OutOrStdout(), records); err != nil {
		return err
	}

	failed := 0
	for _, r := range records {
		if r.Err != nil {
			e.logger.Error("%v", r.Err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents could not be analysed", failed, len(records))
	}
	return nil
}
