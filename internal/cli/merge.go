package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prepflow-io/prepflow/internal/config"
	"github.com/prepflow-io/prepflow/internal/dataset"
	"github.com/prepflow-io/prepflow/internal/merge"
	"github.com/prepflow-io/prepflow/internal/tabular"
	"github.com/prepflow-io/prepflow/internal/workspace"
)

var mergeWorkDir string

var mergeCmd = &cobra.Command{
	Use:   "merge <data-type>",
	Short: "Merge dataset master tables into one sample-indexed table",
	Long: `Loads every dataset configured in prepflow.yaml, merges the master tables
of those carrying the given data type (e.g. transcriptomics, copy_number),
and writes the result to data_out/x_data/<data-type>_master.csv inside an
initialized workspace.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeWorkDir, "workdir", "w", "", "work directory (overrides config)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	tag := args[0]

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return err
	}
	if mergeWorkDir != "" {
		cfg.WorkDir = mergeWorkDir
	}

	datasets := make(map[string]dataset.Dataset, len(cfg.Datasets))
	for name, spec := range cfg.Datasets {
		datasets[name] = dataset.NewCSV(name, spec.Files)
	}

	merged, err := merge.MasterTables(merge.Options{}, datasets, tag)
	if err != nil {
		return err
	}
	if merged == nil {
		fmt.Printf("No datasets provide %s data\n", tag)
		return nil
	}

	workDir, err := workspace.ResolveDir(cfg.WorkDir)
	if err != nil {
		return err
	}
	xDataDir := workspace.XDataDir(workDir)
	if _, err := os.Stat(xDataDir); err != nil {
		return fmt.Errorf("workspace not initialized (run 'prepflow init' first): %w", err)
	}

	outPath := filepath.Join(xDataDir, tag+"_master.csv")
	if err := tabular.WriteCSVFile(outPath, merged, "sample_id"); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d samples, %d columns)\n", outPath, merged.NumRows(), merged.NumColumns())
	return nil
}
