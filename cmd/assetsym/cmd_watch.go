package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetsym/internal/config"
	"assetsym/internal/generator"
	"assetsym/internal/watch"
)

// watchCmd keeps the generated files in sync while the catalog is edited.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the catalogs and regenerate on change",
	Long: `Runs one generation pass, then watches the catalog directories and
regenerates after changes settle. Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	// Initial pass so the outputs are current before watching starts.
	if _, err := generator.Run(ctx, cfg); err != nil {
		return err
	}

	regenerate := func(ctx context.Context) error {
		res, err := generator.Run(ctx, cfg)
		if err != nil {
			return err
		}
		logger.Info("regenerated symbol table",
			zap.Int("bindings", res.Bindings),
			zap.Bool("changed", res.WroteGo || res.WroteHeader))
		return nil
	}

	watcher, err := watch.New(cfg.Catalogs, cfg.GetDebounce(), regenerate, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	return nil
}
