package pkgbuild

import (
	"bufio"
	"os"
	"strings"
)

// ParseVersionStatic is the best-effort fallback reader: a line scan over the
// recipe that only understands simple pkgver=/pkgrel= assignments. It never
// evaluates expressions, so recipes with computed versions need ShellReader.
func ParseVersionStatic(recipePath string) (Version, error) {
	file, err := os.Open(recipePath)
	if err != nil {
		return Version{}, &RecipeError{Path: recipePath, Reason: "opening recipe", Err: err}
	}
	defer file.Close()

	var (
		pkgver, pkgrel   string
		seenVer, seenRel bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if value, ok := strings.CutPrefix(line, varPkgver+"="); ok {
			pkgver = extractValue(value)
			seenVer = true
		} else if value, ok := strings.CutPrefix(line, varPkgrel+"="); ok {
			pkgrel = extractValue(value)
			seenRel = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Version{}, &RecipeError{Path: recipePath, Reason: "reading recipe", Err: err}
	}

	if !seenVer {
		return Version{}, &RecipeError{Path: recipePath, Reason: "pkgver not found"}
	}
	if !seenRel {
		return Version{}, &RecipeError{Path: recipePath, Reason: "pkgrel not found"}
	}

	return Version{Pkgver: pkgver, Pkgrel: pkgrel}, nil
}

// extractValue trims surrounding whitespace and strips exactly one matching
// pair of surrounding double or single quotes.
func extractValue(raw string) string {
	value := strings.TrimSpace(raw)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
