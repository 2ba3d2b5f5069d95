package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepflow-io/prepflow/internal/config"
	"github.com/prepflow-io/prepflow/internal/tabular"
)

var checkRequire []string
var checkContext string

var checkCmd = &cobra.Command{
	Use:   "check <csv-file>",
	Short: "Validate that a CSV input has the required columns",
	Long: `Reads a CSV input and verifies every required column is present. Column
names come from --require, falling back to required_columns in prepflow.yaml.
Matching is exact: no case folding, no trimming.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkRequire, "require", "r", nil, "required column names")
	checkCmd.Flags().StringVar(&checkContext, "context", "", "context label for error messages (defaults to the file name)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	required := checkRequire
	if len(required) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err := config.LoadConfig(cwd)
		if err != nil {
			return err
		}
		required = cfg.RequiredColumns
	}
	if len(required) == 0 {
		return fmt.Errorf("no required columns given (use --require or required_columns in %s)", config.ConfigFileName)
	}

	context := checkContext
	if context == "" {
		context = filepath.Base(path)
	}

	tbl, err := tabular.ReadCSVFile(path)
	if err != nil {
		return err
	}

	if err := tabular.RequireColumns(tbl, required, context); err != nil {
		return err
	}

	fmt.Printf("%s: ok (%s)\n", path, strings.Join(required, ", "))
	return nil
}
