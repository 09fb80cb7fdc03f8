// Package changes maps commit-range diffs onto the packages that own the
// changed paths.
package changes

import (
	"context"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/repoforge/pkgdetect/internal/logger"
	"github.com/repoforge/pkgdetect/internal/pkgrepo"
)

// Detector computes the set of packages changed between a base commit and
// HEAD. Each call opens its own repository handle and re-discovers the
// package list; nothing persists across calls.
type Detector struct {
	repoPath string
	disc     *pkgrepo.Discoverer
	log      *logger.Logger
}

// NewDetector creates a Detector that attributes changed paths to the
// packages found by disc.
func NewDetector(repoPath string, disc *pkgrepo.Discoverer, log *logger.Logger) *Detector {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Detector{
		repoPath: repoPath,
		disc:     disc,
		log:      log.WithRepo(repoPath),
	}
}

// Detect returns the sorted, deduplicated names of packages changed between
// baseRef and HEAD. An empty baseRef means HEAD's first parent; when HEAD has
// no parent (root commit, or no commits at all), every discovered package is
// reported changed, since there is no prior state to diff against.
func (d *Detector) Detect(ctx context.Context, baseRef string) ([]string, error) {
	repo, err := git.PlainOpen(d.repoPath)
	if err != nil {
		return nil, &pkgrepo.RepositoryError{Path: d.repoPath, Err: err}
	}

	packages, err := d.disc.Discover()
	if err != nil {
		return nil, err
	}

	var baseHash plumbing.Hash
	if baseRef != "" {
		resolved, err := repo.ResolveRevision(plumbing.Revision(baseRef))
		if err != nil {
			return nil, &RefResolutionError{Ref: baseRef, Err: err}
		}
		baseHash = *resolved
	} else {
		parent, ok := headParent(repo)
		if !ok {
			d.log.Debugw("no base commit available, reporting full package set")
			return pkgrepo.Names(packages), nil
		}
		baseHash = parent
	}

	head, err := repo.Head()
	if err != nil {
		return nil, &CommitResolutionError{Ref: "HEAD", Err: err}
	}

	diff, err := d.diffCommits(ctx, repo, baseHash, head.Hash())
	if err != nil {
		return nil, err
	}

	changed := orderedmap.NewOrderedMap[string, struct{}]()
	for _, change := range diff {
		for _, rel := range candidatePaths(change) {
			if pkg, ok := pkgrepo.OwnerOf(packages, rel); ok {
				changed.Set(pkg.Name, struct{}{})
			}
		}
	}

	names := make([]string, 0, changed.Len())
	for el := changed.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	sort.Strings(names)

	d.log.Debugw("change detection complete", "base", baseHash.String(), "changed", len(names))
	return names, nil
}

// PathChanged reports whether any entry of the diff between baseRef and HEAD
// falls under the given repository-relative path.
func (d *Detector) PathChanged(ctx context.Context, rel, baseRef string) (bool, error) {
	repo, err := git.PlainOpen(d.repoPath)
	if err != nil {
		return false, &pkgrepo.RepositoryError{Path: d.repoPath, Err: err}
	}

	resolved, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return false, &RefResolutionError{Ref: baseRef, Err: err}
	}

	head, err := repo.Head()
	if err != nil {
		return false, &CommitResolutionError{Ref: "HEAD", Err: err}
	}

	diff, err := d.diffCommits(ctx, repo, *resolved, head.Hash())
	if err != nil {
		return false, err
	}

	rel = strings.TrimSuffix(rel, "/")
	for _, change := range diff {
		for _, candidate := range candidatePaths(change) {
			if candidate == rel || strings.HasPrefix(candidate, rel+"/") {
				return true, nil
			}
		}
	}
	return false, nil
}

// diffCommits peels both hashes to commits and computes their tree-to-tree diff.
func (d *Detector) diffCommits(ctx context.Context, repo *git.Repository, base, head plumbing.Hash) (object.Changes, error) {
	baseCommit, err := repo.CommitObject(base)
	if err != nil {
		return nil, &CommitResolutionError{Ref: base.String(), Err: err}
	}
	headCommit, err := repo.CommitObject(head)
	if err != nil {
		return nil, &CommitResolutionError{Ref: head.String(), Err: err}
	}

	baseTree, err := baseCommit.Tree()
	if err != nil {
		return nil, &CommitResolutionError{Ref: base.String(), Err: err}
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, &CommitResolutionError{Ref: head.String(), Err: err}
	}

	return object.DiffTreeWithOptions(ctx, baseTree, headTree, object.DefaultDiffTreeOptions)
}

// headParent resolves the first parent of HEAD. It reports false when HEAD
// cannot be read or has no parent; callers treat that as the first-commit case.
func headParent(repo *git.Repository) (plumbing.Hash, bool) {
	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, false
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return plumbing.ZeroHash, false
	}
	if commit.NumParents() == 0 {
		return plumbing.ZeroHash, false
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return plumbing.ZeroHash, false
	}
	return parent.Hash, true
}

// candidatePaths collects the new-side and old-side paths of a change so
// renames and deletions are attributed to the owner under either tree.
func candidatePaths(change *object.Change) []string {
	paths := make([]string, 0, 2)
	if change.To.Name != "" {
		paths = append(paths, change.To.Name)
	}
	if change.From.Name != "" {
		paths = append(paths, change.From.Name)
	}
	return paths
}
