package pkgrepo

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/repoforge/pkgdetect/internal/logger"
)

// defaultExcludes are directory names never considered package candidates:
// build artifacts, dependency caches, the build container and the output
// repository.
var defaultExcludes = []string{
	"target",
	"node_modules",
	"build-container",
	"repo",
}

// Discoverer walks a repository checkout and produces the package list.
// Every call to Discover re-reads the working tree; nothing is cached
// across invocations.
type Discoverer struct {
	repoPath string
	exclude  map[string]struct{}
	log      *logger.Logger
}

// NewDiscoverer creates a Discoverer for the repository at repoPath.
// extraExcludes extends the built-in exclusion set.
func NewDiscoverer(repoPath string, extraExcludes []string, log *logger.Logger) *Discoverer {
	if log == nil {
		log = logger.NewDefault()
	}

	exclude := make(map[string]struct{}, len(defaultExcludes)+len(extraExcludes))
	for _, name := range defaultExcludes {
		exclude[name] = struct{}{}
	}
	for _, name := range extraExcludes {
		exclude[name] = struct{}{}
	}

	return &Discoverer{
		repoPath: repoPath,
		exclude:  exclude,
		log:      log.WithRepo(repoPath),
	}
}

// Discover returns every package in the repository: submodules carrying a
// recipe plus plain directories (searched at most two levels deep) carrying
// one. The result is sorted by name; duplicate names across the two
// categories are kept as separate entries.
func (d *Discoverer) Discover() ([]Package, error) {
	repo, err := git.PlainOpen(d.repoPath)
	if err != nil {
		return nil, &RepositoryError{Path: d.repoPath, Err: err}
	}

	packages, err := d.submodulePackages(repo)
	if err != nil {
		return nil, err
	}

	direct, err := d.directPackages()
	if err != nil {
		return nil, err
	}
	packages = append(packages, direct...)

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})

	d.log.Debugw("discovery complete", "packages", len(packages))
	return packages, nil
}

// submodulePackages emits a package for every registered submodule whose
// working-tree path carries a recipe at its root. Submodules without a
// recipe are dependency checkouts, not packages.
func (d *Discoverer) submodulePackages(repo *git.Repository) ([]Package, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, &RepositoryError{Path: d.repoPath, Err: err}
	}

	submodules, err := worktree.Submodules()
	if err != nil {
		return nil, &RepositoryError{Path: d.repoPath, Err: err}
	}

	var packages []Package
	for _, sub := range submodules {
		cfg := sub.Config()
		relPath := filepath.ToSlash(cfg.Path)

		recipePath := filepath.Join(d.repoPath, filepath.FromSlash(cfg.Path), RecipeFile)
		if !fileExists(recipePath) {
			continue
		}

		name := cfg.Name
		if name == "" {
			name = path.Base(relPath)
		}

		packages = append(packages, Package{
			Name:        name,
			Path:        relPath,
			RecipePath:  recipePath,
			IsSubmodule: true,
		})
	}

	return packages, nil
}

// directPackages scans the repository root for plain package directories.
// A candidate either carries a recipe directly or one level below; the walk
// never descends past two levels. Unreadable subdirectories are skipped.
func (d *Discoverer) directPackages() ([]Package, error) {
	entries, err := os.ReadDir(d.repoPath)
	if err != nil {
		return nil, &RepositoryError{Path: d.repoPath, Err: err}
	}

	var packages []Package
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		dirPath := filepath.Join(d.repoPath, name)

		// Submodule checkouts are handled by submodulePackages; scanning
		// them here would double-discover.
		if isSubmoduleDir(dirPath) {
			continue
		}
		if d.skipName(name) {
			continue
		}

		recipePath := filepath.Join(dirPath, RecipeFile)
		if fileExists(recipePath) {
			packages = append(packages, Package{
				Name:       name,
				Path:       name,
				RecipePath: recipePath,
			})
			continue
		}

		// One level deeper, and no further.
		children, err := os.ReadDir(dirPath)
		if err != nil {
			d.log.Debugw("skipping unreadable directory", "dir", dirPath, "error", err)
			continue
		}
		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			childPath := filepath.Join(dirPath, child.Name())
			if isSubmoduleDir(childPath) {
				continue
			}
			recipePath := filepath.Join(childPath, RecipeFile)
			if fileExists(recipePath) {
				packages = append(packages, Package{
					Name:       child.Name(),
					Path:       name + "/" + child.Name(),
					RecipePath: recipePath,
				})
			}
		}
	}

	return packages, nil
}

// skipName reports whether a top-level directory name is excluded from the
// package search: hidden entries and the exclusion set.
func (d *Discoverer) skipName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, excluded := d.exclude[name]
	return excluded
}

// isSubmoduleDir reports whether dir is a repository of its own: submodules
// carry either a .git gitdir file or a full .git directory.
func isSubmoduleDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
