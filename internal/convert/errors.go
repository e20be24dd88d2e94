package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationExists is returned when the destination exists and the
	// conversion was not forced.
	ErrDestinationExists = errors.New("destination already exists (use -f to overwrite)")
	// ErrDestinationLocked is returned when another process holds the
	// destination lock.
	ErrDestinationLocked = errors.New("destination is locked by another conversion")
)

// FilesystemError reports a failed filesystem step of a conversion.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
