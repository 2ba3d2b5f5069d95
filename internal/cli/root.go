package cli

import (
	"github.com/spf13/cobra"

	"github.com/prepflow-io/prepflow/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "prepflow",
	Short: "Input staging and master-table preparation for drug-response pipelines",
	Long: `Prepflow stages the on-disk layout for a modeling run, validates tabular
inputs, and merges per-sample omics master tables into the wide feature
tables downstream training consumes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("prepflow version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
