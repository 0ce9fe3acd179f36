package main

import (
	"github.com/spf13/cobra"

	"assetsym/internal/config"
	"assetsym/internal/generator"
)

// verifyCmd checks that the generated files match the catalogs.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the generated files are up to date",
	Long: `Regenerates the symbol table in memory and compares it against the
files on disk. Exits nonzero with a diff when they have drifted, which
makes it suitable as a CI gate:

  assetsym verify || (echo "run go generate ./..." && exit 1)`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := generator.Verify(commandContext(cmd), cfg); err != nil {
		return err
	}
	logger.Info("generated files match the catalogs")
	return nil
}
