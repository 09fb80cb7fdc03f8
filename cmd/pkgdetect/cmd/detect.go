package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repoforge/pkgdetect/internal/changes"
	"github.com/repoforge/pkgdetect/internal/config"
	"github.com/repoforge/pkgdetect/internal/logger"
	"github.com/repoforge/pkgdetect/internal/pkgrepo"
)

var (
	detectBaseRef string
	detectFormat  string
	detectAll     bool
	detectPaths   bool
)

var detectCmd = &cobra.Command{
	Use:   "detect-changes",
	Short: "Detect packages that have changed between commits",
	Long: `Detect-changes diffs the base ref against HEAD and reports every
package owning a changed path. Without --base-ref, HEAD's first parent is
used; on a root commit every package is reported.

Example:
  pkgdetect detect-changes --repo-path /srv/packages --base-ref origin/master
  pkgdetect detect-changes --format json --paths`,
	RunE: runDetectChanges,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectBaseRef, "base-ref", "b", "",
		"Base commit/ref to compare against (defaults to HEAD^)")
	detectCmd.Flags().StringVarP(&detectFormat, "format", "f", "",
		"Output format (space, json)")
	detectCmd.Flags().BoolVarP(&detectAll, "all", "a", false,
		"Return all packages regardless of changes (full rebuild)")
	detectCmd.Flags().BoolVarP(&detectPaths, "paths", "p", false,
		"Return package paths instead of names")
}

func runDetectChanges(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Per-command overrides
	if detectBaseRef != "" {
		cfg.Repository.BaseRef = detectBaseRef
	}
	if detectFormat != "" {
		cfg.Output.Format = detectFormat
	}
	if detectAll {
		cfg.Detection.All = true
	}
	if detectPaths {
		cfg.Output.Paths = true
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

	var selected []pkgrepo.Package
	if cfg.Detection.All {
		selected, err = discoverer.Discover()
		if err != nil {
			return err
		}
	} else {
		detector := changes.NewDetector(cfg.Repository.Path, discoverer, log)
		changedNames, err := detector.Detect(context.Background(), cfg.Repository.BaseRef)
		if err != nil {
			return err
		}

		allPackages, err := discoverer.Discover()
		if err != nil {
			return err
		}

		changedSet := make(map[string]struct{}, len(changedNames))
		for _, name := range changedNames {
			changedSet[name] = struct{}{}
		}
		for _, pkg := range allPackages {
			if _, ok := changedSet[pkg.Name]; ok {
				selected = append(selected, pkg)
			}
		}
	}

	identifiers := pkgrepo.Names(selected)
	if cfg.Output.Paths {
		identifiers = pkgrepo.Paths(selected)
	}

	return renderList(cmd, identifiers, cfg.Output.Format)
}

// renderList prints the identifier list in the configured format. Nothing is
// printed until encoding has succeeded, so a failure never emits a partial list.
func renderList(cmd *cobra.Command, items []string, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		cmd.Println(string(data))
	case config.FormatSpace:
		cmd.Println(strings.Join(items, " "))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
