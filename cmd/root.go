package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beardbaba/KuchTohHai/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-organizer",
	Short: "Sort the files of a directory into category folders by extension",
	Long: `File Organizer moves every file directly inside a directory into a
sub-folder named after its category (Images, Documents, Archives, Videos,
Audio, Programs, Code, Others).

Files that cannot be moved (permission denied, a file with the same name
already in the category folder, anything unexpected) are logged and left in
place; the run always finishes and reports how many files were processed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.Load(cfgFile)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.file-organizer/config.yaml)")
}
