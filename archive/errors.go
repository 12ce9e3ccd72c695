package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTitle is returned for a feed whose title is empty or blank.
	ErrMissingTitle = errors.New("feed has no title")

	// ErrCancelled is returned when the run context ends between two items.
	ErrCancelled = errors.New("download cancelled")
)

// DirectoryError reports an output directory that could not be created.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("failed to create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}
