// init.go implements the "guessnumber init" command.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guessnumber/guessnumber/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .guessnumber/config.yaml",
	Long: `Create the .guessnumber/ directory in the current directory with a
default config.yaml. Asks before overwriting an existing config
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return initConfig(cmd, dir, forceFlag)
}

func initConfig(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()
	path := config.Path(dir)

	if _, statErr := os.Stat(path); statErr == nil && !force {
		fmt.Fprintf(out, "Warning: %s already exists.\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
