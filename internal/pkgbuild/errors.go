package pkgbuild

import "fmt"

// RecipeError indicates that a recipe could not be read or did not yield the
// required fields.
type RecipeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *RecipeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recipe %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("recipe %s: %s", e.Path, e.Reason)
}

func (e *RecipeError) Unwrap() error {
	return e.Err
}
