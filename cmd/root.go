package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "volcano-cli",
	Short: "Explore volcanoes and the cities that live near them",
	Long:  "Loads the volcano eruption and world cities datasets, filters volcanoes by category, and counts same-country volcanoes within a radius of each city.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
