package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beardbaba/KuchTohHai/app"
	"github.com/beardbaba/KuchTohHai/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Ask for the directory and verbosity, then organize it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := tui.Run(tui.Options{Validate: pathExists})
		if errors.Is(err, tui.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "\nOperation cancelled by user!")
			return nil
		}
		if err != nil {
			return err
		}

		return organize(cmd, &app.OrganizeOptions{
			Directory: answers.Directory,
			Verbose:   answers.Verbose,
		})
	},
}

func pathExists(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return errors.New("the specified path does not exist")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
