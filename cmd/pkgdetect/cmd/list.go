package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/repoforge/pkgdetect/internal/logger"
	"github.com/repoforge/pkgdetect/internal/pkgbuild"
	"github.com/repoforge/pkgdetect/internal/pkgrepo"
)

var (
	listVerbose bool
	listPaths   bool
)

var listCmd = &cobra.Command{
	Use:   "list-packages",
	Short: "List all packages in the repository",
	Long: `List-packages prints every discovered package, one per line.
With --verbose, each line also carries the version resolved from the
package's PKGBUILD.

Example:
  pkgdetect list-packages --repo-path /srv/packages --verbose`,
	RunE: runListPackages,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false,
		"Show version information from PKGBUILD")
	listCmd.Flags().BoolVarP(&listPaths, "paths", "p", false,
		"Show package paths instead of names")
}

func runListPackages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	discoverer := pkgrepo.NewDiscoverer(cfg.Repository.Path, cfg.Repository.ExcludeDirs, log)
	packages, err := discoverer.Discover()
	if err != nil {
		return err
	}

	if !listVerbose {
		for _, pkg := range packages {
			cmd.Println(identifierOf(pkg))
		}
		return nil
	}

	// Column width for aligned verbose output
	width := 0
	for _, pkg := range packages {
		if w := runewidth.StringWidth(identifierOf(pkg)); w > width {
			width = w
		}
	}

	reader := pkgbuild.NewShellReader(log)
	for _, pkg := range packages {
		identifier := identifierOf(pkg)
		padding := strings.Repeat(" ", width-runewidth.StringWidth(identifier))

		versionStr := "<version unknown>"
		if version, err := reader.ReadVersion(context.Background(), pkg.RecipePath); err == nil {
			versionStr = version.String()
		} else {
			log.WithPackage(pkg.Name).Debugw("version resolution failed", "error", err)
		}

		cmd.Printf("%s%s  %s\n", colorize(pkg, identifier), padding, versionStr)
	}
	return nil
}

// identifierOf picks the name or path representation for output.
func identifierOf(pkg pkgrepo.Package) string {
	if listPaths {
		return pkg.Path
	}
	return pkg.Name
}

// colorize highlights submodule packages differently from plain directories.
// gookit/color disables itself on non-terminal output.
func colorize(pkg pkgrepo.Package, identifier string) string {
	if pkg.IsSubmodule {
		return color.Cyan.Sprint(identifier)
	}
	return color.Green.Sprint(identifier)
}
