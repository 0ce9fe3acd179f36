package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetsym/internal/config"
	"assetsym/internal/generator"
)

// generateCmd regenerates the symbol table from the configured catalogs.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the symbol table from the asset catalogs",
	Long: `Scans the configured catalogs and rewrites the generated Go file (and
the Objective-C header, when configured). Outputs already matching the
catalog are left untouched so file watchers see no spurious changes.

Example:
  assetsym generate
  assetsym generate --config tools/assetsym.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	res, err := generator.Run(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	logger.Info("generated symbol table",
		zap.Int("bindings", res.Bindings),
		zap.String("output", cfg.Output.GoFile),
		zap.Bool("changed", res.WroteGo || res.WroteHeader))
	return nil
}
