package pkgrepo

import "fmt"

// RepositoryError indicates that the repository at Path could not be opened
// or its metadata could not be read.
type RepositoryError struct {
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository at %s: %v", e.Path, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
