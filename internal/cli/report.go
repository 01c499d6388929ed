// report.go implements the "guessnumber report" command for summarizing the event log.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessnumber/guessnumber/internal/log"
	"github.com/guessnumber/guessnumber/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize past games from the event log",
	Long: `Read .guessnumber/log.jsonl and print games played, rounds won,
guesses per round and total play time. Games are only logged when
played with --log or log.enabled in the config.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return printReport(cmd, dir)
}

func printReport(cmd *cobra.Command, dir string) error {
	logger, err := log.NewLogger(dir)
	if err != nil {
		return err
	}
	events, err := logger.ReadAll()
	if err != nil {
		return fmt.Errorf("reading event log: %w", err)
	}
	if len(events) == 0 {
		return fmt.Errorf("no games logged in %s; play with --log first", logger.Path())
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Format(report.Generate(events)))
	return nil
}
