package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EZ-Api/concreteness"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [TEXT...]",
		Short: "Print the tokens used for analysis, one per line",
		RunE:  runTokenize,
	}
	cmd.Flags().Bool("stopwords", false, "keep English stopwords")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	includeStopwords, err := cmd.Flags().GetBool("stopwords")
	if err != nil {
		return fmt.Errorf("failed to get stopwords flag: %w", err)
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, token := range concreteness.Tokenize(text, includeStopwords) {
		if _, err := fmt.Fprintln(out, token); err != nil {
			return err
		}
	}
	return nil
}
