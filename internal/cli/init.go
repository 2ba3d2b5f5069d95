package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepflow-io/prepflow/internal/config"
	"github.com/prepflow-io/prepflow/internal/workspace"
)

var initWorkDir string
var initOverwrite bool
var initSeeds string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the run directory layout",
	Long: `Creates the fixed directory tree a run stages its inputs and outputs in:

  <workdir>/data_in_tmp/
  <workdir>/data_out/{splits,x_data,y_data}/

and writes a run manifest to data_out/run.yaml. Settings come from
prepflow.yaml in the current directory; flags override it.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initWorkDir, "workdir", "w", "", "work directory (overrides config)")
	initCmd.Flags().BoolVarP(&initOverwrite, "overwrite", "f", false, "reuse an existing layout")
	initCmd.Flags().StringVar(&initSeeds, "seeds", "", "comma-separated random seeds (overrides config)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return err
	}
	if initWorkDir != "" {
		cfg.WorkDir = initWorkDir
	}
	if initOverwrite {
		cfg.Overwrite = true
	}
	if initSeeds != "" {
		cfg.Seeds = initSeeds
	}

	if err := workspace.Init(cfg); err != nil {
		return err
	}

	fmt.Printf("Initialized workspace in %s\n", cfg.WorkDir)
	return nil
}
