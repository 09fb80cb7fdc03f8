package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repoforge/pkgdetect/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	repoPath  string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pkgdetect",
	Short: "Package repository change detector",
	Long: `A CLI tool for package-repository pipelines that discovers buildable
packages (directories and git submodules carrying a PKGBUILD) and determines
which of them changed between two commits, driving selective CI rebuilds.

Features:
  - Submodule-aware package discovery, bounded to two directory levels
  - Commit-range change detection with rename and deletion attribution
  - PKGBUILD version resolution through an embedded POSIX shell
  - Space-separated or JSON output for pipeline consumption`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "pkgdetect.yaml",
		"Path to configuration file")

	// Repository override
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo-path", "r", "",
		"Override repository path (defaults to current directory)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// loadConfig loads the configuration file and applies CLI overrides.
// The default config file is optional; an explicitly passed one must exist.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config

	if _, err := os.Stat(cfgFile); err != nil {
		if !os.IsNotExist(err) || rootCmd.PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.DefaultConfig()
	} else {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(repoPath, logLevel, logFormat)
	return cfg, nil
}
