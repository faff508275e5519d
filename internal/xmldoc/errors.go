package xmldoc

import "errors"

var (
	// ErrMalformed indicates the input is not a well-formed XML document.
	ErrMalformed = errors.New("malformed XML document")

	// ErrRender indicates the document could not be written to its sink.
	ErrRender = errors.New("rendering XML document")
)
