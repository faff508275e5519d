package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrMalformedDocument indicates the document is not XML or a file-entry
	// lacks a required attribute or carries an unparsable size
	ErrMalformedDocument = errors.New("malformed manifest document")

	// ErrSerialization indicates the manifest could not be written to its sink
	ErrSerialization = errors.New("writing manifest")

	// ErrNotFound indicates no entry has the requested path
	ErrNotFound = errors.New("manifest entry not found")

	// ErrInvalidSize indicates a size outside 0..math.MaxInt64 or a negative
	// size other than the absent marker
	ErrInvalidSize = errors.New("invalid entry size")
)
