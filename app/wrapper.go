package app

import (
	"github.com/spf13/cobra"

	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/daemon"
	"github.com/Greengage-project/interlinker-ceditor/internal/logger"
)

func init() { //nolint: gochecknoinits
	wrapperCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	wrapperCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(wrapperCmd)
}

// wrapperCmd starts the legacy wrapper backend. It serves the same asset
// CRUD surface under the /api/v1 prefix, uses the fixed session expiry and
// falls back to an anonymous author when no identity is resolved.
var wrapperCmd = &cobra.Command{
	Use:   "wrapper",
	Short: "Start the legacy Etherpad wrapper web service",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		cfg.Variant = config.VariantWrapper

		if devMode {
			cfg.DevMode = true
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		daemon := daemon.New(&cfg)
		if err := daemon.Start(); err != nil {
			return err
		}

		return nil
	},
}
