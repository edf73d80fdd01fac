package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quillfmt/quill/internal/configloader"
	"github.com/quillfmt/quill/internal/logging"
)

// migrateFlags holds the flags for the migrate command.
type migrateFlags struct {
	force  bool
	output string
	input  string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert a Prettier configuration to quill format",
		Long: `Convert an existing Prettier configuration file (.prettierrc,
.prettierrc.json, .prettierrc.yaml, etc.) to quill format (.quillrc.yaml).

If no input file is specified, the command searches for Prettier
configuration files in the current directory.

JavaScript configuration files (prettier.config.js, .prettierrc.cjs) cannot
be converted automatically and require manual migration.

Examples:
  quill migrate                     Auto-detect and convert Prettier config
  quill migrate .prettierrc.json    Convert specific file
  quill migrate --output conf.yaml  Write to custom output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runMigrate(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".quillrc.yaml", "Output file path")

	return cmd
}

func runMigrate(flags *migrateFlags) error {
	logger := logging.Default()

	inputPath := flags.input
	if inputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inputPath = configloader.FindPrettierConfig(cwd)
		if inputPath == "" {
			return errors.New("no Prettier configuration file found in current directory")
		}

		logger.Info("found Prettier config", logging.FieldPath, inputPath)
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}

	if !configloader.CanMigrate(inputPath) {
		return fmt.Errorf("migration not supported: %s is a JavaScript config; copy its options by hand", inputPath)
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return fmt.Errorf("output file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	result, err := configloader.ConvertPrettierConfig(inputPath)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	content, err := result.ToYAML(inputPath)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	if err := os.WriteFile(absOutput, content, configFilePermissions); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	logger.Info("migration complete",
		logging.FieldPath, inputPath,
		logging.FieldConfig, flags.output,
	)

	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the migrated configuration")
	}

	return nil
}
