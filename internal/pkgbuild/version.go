// Package pkgbuild reads name and version information out of PKGBUILD
// recipes. The authoritative reader sources the recipe under a POSIX shell
// interpreter; a static line-scanning fallback handles simple assignments
// without evaluating anything.
package pkgbuild

// Version is the pkgver/pkgrel pair declared by a recipe.
type Version struct {
	Pkgver string
	Pkgrel string
}

// String renders the version the way repository tooling expects it:
// pkgver and pkgrel joined by a single hyphen, e.g. "1.2.3-1".
func (v Version) String() string {
	return v.Pkgver + "-" + v.Pkgrel
}
