package changes

import "fmt"

// RefResolutionError indicates that a supplied base ref does not resolve to
// a commit.
type RefResolutionError struct {
	Ref string
	Err error
}

func (e *RefResolutionError) Error() string {
	return fmt.Sprintf("resolving ref %q: %v", e.Ref, e.Err)
}

func (e *RefResolutionError) Unwrap() error {
	return e.Err
}

// CommitResolutionError indicates that HEAD or a resolved ref could not be
// peeled to a commit object.
type CommitResolutionError struct {
	Ref string
	Err error
}

func (e *CommitResolutionError) Error() string {
	return fmt.Sprintf("resolving commit for %s: %v", e.Ref, e.Err)
}

func (e *CommitResolutionError) Unwrap() error {
	return e.Err
}
