package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beardbaba/KuchTohHai/app"
	"github.com/beardbaba/KuchTohHai/pkg/organizer"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Move the files of a directory into category folders",
	Long: `Classify every regular file directly inside <directory> by its extension
and move it into <directory>/<Category>. Sub-directories are not descended
into. A file whose name is already taken in the category folder is skipped
and reported, never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	preset, _ := cmd.Flags().GetString("preset")
	logFile, _ := cmd.Flags().GetString("log-file")
	noLogFile, _ := cmd.Flags().GetBool("no-log-file")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	opts := &app.OrganizeOptions{
		Directory: args[0],
		Verbose:   verbose,
		DryRun:    dryRun,
		Preset:    preset,
		LogFile:   logFile,
		NoLogFile: noLogFile,
		Exclude:   exclude,
	}

	return organize(cmd, opts)
}

// organize 执行整理并输出结果，organize 与 interactive 命令共用
func organize(cmd *cobra.Command, opts *app.OrganizeOptions) error {
	result, err := app.RunOrganize(cmd.Context(), opts)
	out := cmd.OutOrStdout()

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "\nOperation cancelled by user!")
		if result != nil {
			fmt.Fprintln(out, result.String())
		}
		return err
	case errors.Is(err, organizer.ErrNotADirectory):
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	case err != nil:
		fmt.Fprintln(out, "A critical error occurred. See log file for details.")
		return err
	}

	fmt.Fprintln(out, result.String())
	if !result.DryRun {
		fmt.Fprintln(out, "Organization completed successfully. Check log file for details.")
	}
	return nil
}

func init() {
	organizeCmd.Flags().BoolP("verbose", "v", false, "show every file move on the console")
	organizeCmd.Flags().BoolP("dry-run", "n", false, "only report where files would go")
	organizeCmd.Flags().String("preset", "", "category table: default or legacy (overrides config)")
	organizeCmd.Flags().String("log-file", "", "log file path (overrides config)")
	organizeCmd.Flags().Bool("no-log-file", false, "log to the console only")
	organizeCmd.Flags().StringSlice("exclude", nil, "glob of file names to leave alone (repeatable)")

	rootCmd.AddCommand(organizeCmd)
}
