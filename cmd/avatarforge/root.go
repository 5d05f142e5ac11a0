package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath    string
	logLevel      string
	noInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "avatarforge",
	Short: "Batch converter for humanoid avatar scenes",
	Long: `avatarforge - batch converter for humanoid avatar scenes

Watches a drop folder of .vrm avatars and converts each one to
FBX, GLB, DAE and OBJ, rebinding the skeleton to a control rig
and rewriting toon shader graphs for targets that cannot read them.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noInteractive, "no-interactive", false, "Skip rig binding, conversion-only export")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("avatarforge {{.Version}}\n")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
}
