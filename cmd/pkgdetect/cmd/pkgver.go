package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/repoforge/pkgdetect/internal/logger"
	"github.com/repoforge/pkgdetect/internal/pkgbuild"
	"github.com/repoforge/pkgdetect/internal/pkgrepo"
)

var pkgverCmd = &cobra.Command{
	Use:   "package-version <path>",
	Short: "Get package version from PKGBUILD",
	Long: `Package-version resolves pkgver and pkgrel from a PKGBUILD and prints
them joined with a hyphen. The argument may be the PKGBUILD itself or the
package directory containing it.

Example:
  pkgdetect package-version packages/niri`,
	Args: cobra.ExactArgs(1),
	RunE: runPackageVersion,
}

func init() {
	rootCmd.AddCommand(pkgverCmd)
}

func runPackageVersion(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	recipePath := args[0]
	if filepath.Base(recipePath) != pkgrepo.RecipeFile {
		recipePath = filepath.Join(recipePath, pkgrepo.RecipeFile)
	}

	reader := pkgbuild.NewShellReader(log)
	version, err := reader.ReadVersion(context.Background(), recipePath)
	if err != nil {
		return err
	}

	cmd.Println(version.String())
	return nil
}
