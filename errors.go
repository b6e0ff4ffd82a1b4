package godbfcp

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("file is too short for a dbf header")
	ErrInvalidDate        = errors.New("'last update' (YYMMDD) is not valid")
	ErrUnknownFileType    = errors.New("'dbf file type' is not valid")
	ErrFileTypeNotEnabled = errors.New("'dbf file type' is not enabled")
	ErrReservedNotZero    = errors.New("offset 30/31 bytes are not zero")
	ErrUnknownCodePage    = errors.New("'code page mark' is not valid")

	// ErrUnavailable means the file could not be opened: it is missing,
	// locked by another writer, or access was denied.
	ErrUnavailable = errors.New("dbf file is not accessible")
)

// HeaderError reports a file that is not a valid DBF file.
type HeaderError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("not a dbf file: %s (offset %d): %v", e.Path, e.Offset, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

// IsNotDBF reports whether err means the file exists but is not a valid
// DBF file, as opposed to an access problem.
func IsNotDBF(err error) bool {
	var he *HeaderError
	return errors.As(err, &he)
}

// IsUnavailable reports whether err means the file could not be accessed.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func headerError(path string, offset int64, err error) error {
	return &HeaderError{Path: path, Offset: offset, Err: err}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
