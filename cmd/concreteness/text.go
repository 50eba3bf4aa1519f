package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// readText joins args, or reads stdin when there are none or the only
// argument is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// formatMetric prints v with full precision; +Inf stays "+Inf".
func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var avgCmdLong = `Avg prints the mean concreteness of TEXT, or of stdin when no text is given.
Tokens without a rating are skipped unless --all-words is set, in which case
they count toward the denominator.`

func newAvgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avg [TEXT...]",
		Short: "Average concreteness of a text",
		Long:  avgCmdLong,
		RunE:  runAvg,
	}
	addAnalysisFlags(cmd)
	return cmd
}

func runAvg(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := e.analysisOptions(cmd)
	if err != nil {
		return err
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatMetric(e.analyzer.AvgTextConcreteness(text, opts)))
	return err
}

func newRatioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratio [TEXT...]",
		Short: "Very concrete words per very abstract word",
		Long:  `Ratio prints the number of very concrete words divided by the number of very abstract words. It prints +Inf when only concrete words occur and 0 when neither band is hit.`,
		RunE:  runRatio,
	}
	addAnalysisFlags(cmd)
	return cmd
}

func runRatio(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := e.analysisOptions(cmd)
	if err != nil {
		return err
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatMetric(e.analyzer.ConcreteAbstractRatio(text, opts)))
	return err
}
