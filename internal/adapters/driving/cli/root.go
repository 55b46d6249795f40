// Package cli wires the Trove commands: resolving raw dataset
// references, fetching them locally, and inspecting the resolution table.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trovelabs/trove-cli/internal/adapters/driven/config/file"
	"github.com/trovelabs/trove-cli/internal/artifacts"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
	"github.com/trovelabs/trove-cli/internal/core/ports/driving"
	"github.com/trovelabs/trove-cli/internal/core/services"
	"github.com/trovelabs/trove-cli/internal/logger"
	"github.com/trovelabs/trove-cli/internal/sources"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services shared by the commands, built once per invocation.
// Tests may inject fakes before calling Execute.
var (
	configStore    driven.ConfigStore
	datasetService driving.DatasetResolver
)

var rootCmd = &cobra.Command{
	Use:   "trove",
	Short: "Fetch and track datasets from pluggable artifact stores",
	Long: `Trove resolves raw dataset references - local paths, file:// URIs, or
remote URIs like s3-style scheme references - to a canonical dataset
source and can materialize the data on the local filesystem.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.trove)")
}

// initServices builds the store directory and the source resolution
// table. The hand-written HTTP and vault source types register first;
// vault must shadow the generated local source for /vault mount paths.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if datasetService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configStore = cfg

	dir := artifacts.DefaultRegistry(cfg)
	registry := services.NewSourceRegistry()

	if webStore, ok := dir.Get("http"); ok {
		if err := registry.Register(sources.NewHTTPSource(webStore)); err != nil {
			logger.Warn("failed to register %s: %v", sources.HTTPTypeName, err)
		}
	}
	if vaultStore, ok := dir.Get("vault"); ok {
		if err := registry.Register(sources.NewVaultSource(vaultStore)); err != nil {
			logger.Warn("failed to register %s: %v", sources.VaultTypeName, err)
		}
	}
	services.RegisterStoreSources(registry, dir)

	datasetService = services.NewDatasetService(registry)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
