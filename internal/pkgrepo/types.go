// Package pkgrepo models buildable packages inside a package-repository
// checkout and discovers them from the working tree.
package pkgrepo

import "strings"

// RecipeFile is the build recipe a directory must contain to count as a package.
const RecipeFile = "PKGBUILD"

// Package is a single buildable unit: a directory (plain or submodule)
// containing a build recipe.
type Package struct {
	// Name is the package identifier, taken from the directory name or the
	// submodule's declared name. Names are not deduplicated across the
	// submodule and directory categories.
	Name string

	// Path is the package directory relative to the repository root, always
	// slash-separated. It is the ownership key for change attribution.
	Path string

	// RecipePath is the full path to the package's PKGBUILD.
	RecipePath string

	// IsSubmodule is true when the package lives in a git submodule rather
	// than a plain tracked directory.
	IsSubmodule bool
}

// Owns reports whether rel, a slash-separated path relative to the repository
// root, falls inside this package's directory.
func (p Package) Owns(rel string) bool {
	return rel == p.Path || strings.HasPrefix(rel, p.Path+"/")
}

// OwnerOf returns the first package in pkgs that owns rel. Discovery returns
// packages sorted by name, so ties resolve to the lexicographically first
// owner.
func OwnerOf(pkgs []Package, rel string) (Package, bool) {
	for _, p := range pkgs {
		if p.Owns(rel) {
			return p, true
		}
	}
	return Package{}, false
}

// Names extracts the name of every package, preserving order.
func Names(pkgs []Package) []string {
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	return names
}

// Paths extracts the repository-relative path of every package, preserving order.
func Paths(pkgs []Package) []string {
	paths := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		paths = append(paths, p.Path)
	}
	return paths
}
