package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ipcli/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ipcli [w: number] [h: number] [color: {t | f}]",
	Short: "ipcli is an interactive two-color bitmap editor",
	Long: `ipcli edits an on/off pixel grid through short text commands,
redraws the canvas whenever it changes and records the session as a replayable script.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file (default ipcli.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("store", "", "Script store: file, memory or redis")
	rootCmd.PersistentFlags().String("store-dir", "", "Directory of the file script store")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL of the redis script store")
}

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Store.Kind = v
	}
	if v, _ := cmd.Flags().GetString("store-dir"); v != "" {
		cfg.Store.Dir = v
	}
	if v, _ := cmd.Flags().GetString("redis-url"); v != "" {
		cfg.Store.RedisURL = v
		if !cmd.Flags().Changed("store") {
			cfg.Store.Kind = config.StoreRedis
		}
	}
	return cfg, nil
}
