package pkgbuild

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/repoforge/pkgdetect/internal/logger"
)

// Recipe variable names resolved by the shell reader.
const (
	varPkgver  = "pkgver"
	varPkgrel  = "pkgrel"
	varPkgname = "pkgname"
)

// VersionReader resolves the declared name and version of a recipe.
type VersionReader interface {
	ReadVersion(ctx context.Context, recipePath string) (Version, error)
	ReadName(ctx context.Context, recipePath string) (string, error)
}

// ShellReader is the authoritative VersionReader. It sources the recipe in
// an embedded POSIX shell so computed version fields resolve the same way
// they would under makepkg, then reads the variables out of the interpreter
// state. One blocking interpreter run per recipe; no pooling.
type ShellReader struct {
	log *logger.Logger
}

// NewShellReader creates a ShellReader.
func NewShellReader(log *logger.Logger) *ShellReader {
	if log == nil {
		log = logger.NewDefault()
	}
	return &ShellReader{log: log}
}

// ReadVersion sources the recipe and returns its pkgver/pkgrel pair.
// Both fields must be present and non-empty.
func (r *ShellReader) ReadVersion(ctx context.Context, recipePath string) (Version, error) {
	vars, err := r.sourceRecipe(ctx, recipePath)
	if err != nil {
		return Version{}, err
	}

	version := Version{Pkgver: vars[varPkgver], Pkgrel: vars[varPkgrel]}
	if version.Pkgver == "" {
		return Version{}, &RecipeError{Path: recipePath, Reason: "pkgver is empty or missing"}
	}
	if version.Pkgrel == "" {
		return Version{}, &RecipeError{Path: recipePath, Reason: "pkgrel is empty or missing"}
	}
	return version, nil
}

// ReadName sources the recipe and returns its declared package name.
func (r *ShellReader) ReadName(ctx context.Context, recipePath string) (string, error) {
	vars, err := r.sourceRecipe(ctx, recipePath)
	if err != nil {
		return "", err
	}

	name := vars[varPkgname]
	if name == "" {
		return "", &RecipeError{Path: recipePath, Reason: "pkgname is empty or missing"}
	}
	return name, nil
}

// sourceRecipe parses and runs the recipe in a fresh interpreter and returns
// the values of the recipe variables. Recipe stdout/stderr is captured and
// discarded; only interpreter state is read.
func (r *ShellReader) sourceRecipe(ctx context.Context, recipePath string) (map[string]string, error) {
	file, err := os.Open(recipePath)
	if err != nil {
		return nil, &RecipeError{Path: recipePath, Reason: "opening recipe", Err: err}
	}
	defer file.Close()

	prog, err := syntax.NewParser().Parse(file, recipePath)
	if err != nil {
		return nil, &RecipeError{Path: recipePath, Reason: "parsing recipe", Err: err}
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(filepath.Dir(recipePath)),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		return nil, &RecipeError{Path: recipePath, Reason: "creating interpreter", Err: err}
	}

	if err := runner.Run(ctx, prog); err != nil {
		r.log.Debugw("recipe execution failed", "recipe", recipePath, "stderr", stderr.String())
		return nil, &RecipeError{Path: recipePath, Reason: "sourcing recipe", Err: err}
	}

	vars := make(map[string]string, 3)
	for _, name := range []string{varPkgver, varPkgrel, varPkgname} {
		if v, ok := runner.Vars[name]; ok {
			vars[name] = v.String()
		}
	}
	return vars, nil
}
