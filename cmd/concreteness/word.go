package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word WORD...",
		Short: "Print the concreteness rating of each word",
		Long:  `Word looks up each argument exactly as given and prints its stored rating unrounded, or "unknown" when the dataset has no entry.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWord,
	}
}

func runWord(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	width := 0
	for _, word := range args {
		width = max(width, runewidth.StringWidth(word))
	}
	out := cmd.OutOrStdout()
	for _, word := range args {
		value := "unknown"
		if v, ok := e.analyzer.WordConcreteness(word).Get(); ok {
			value = formatMetric(v)
		}
		if _, err := fmt.Fprintf(out, "%s  %s\n", runewidth.FillRight(word, width), value); err != nil {
			return err
		}
	}
	return nil
}
