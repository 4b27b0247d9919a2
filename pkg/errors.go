package assethashmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks
var (
	ErrPathNotFound = errors.New("path not found")
	ErrFileRead     = errors.New("file read failed")
)

// PathNotFoundError reports a root path that does not exist or cannot be accessed
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path '%s' not found", e.Path)
}

func (e *PathNotFoundError) Unwrap() error { return e.Err }

func (e *PathNotFoundError) Is(target error) bool { return target == ErrPathNotFound }

// FileReadError reports a file selected for hashing that could not be read
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func (e *FileReadError) Is(target error) bool { return target == ErrFileRead }
