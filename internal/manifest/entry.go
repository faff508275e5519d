package manifest

import (
	"fmt"
	"strconv"
)

// Size is the optional byte length of a file entry. The zero value is an
// unknown size, written without a manifest:size attribute.
type Size struct {
	n     uint64
	known bool
}

// UnknownSize is the absent size.
var UnknownSize = Size{}

// SizeOf returns a known size of n bytes.
func SizeOf(n uint64) Size {
	return Size{n: n, known: true}
}

// SizeFromInt64 converts a signed length where -1 means unknown. Any other
// negative value is rejected.
func SizeFromInt64(n int64) (Size, error) {
	switch {
	case n == -1:
		return UnknownSize, nil
	case n < 0:
		return UnknownSize, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	default:
		return SizeOf(uint64(n)), nil
	}
}

// ParseSize reads a manifest:size attribute value: an unsigned decimal no
// larger than math.MaxInt64.
func ParseSize(raw string) (Size, error) {
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return UnknownSize, fmt.Errorf("%w: %q: %w", ErrInvalidSize, raw, err)
	}
	return SizeOf(n), nil
}

// Value returns the size and whether it is known.
func (s Size) Value() (uint64, bool) {
	return s.n, s.known
}

// Known reports whether the size is present.
func (s Size) Known() bool {
	return s.known
}

// String renders a known size in decimal and an unknown one as "-".
func (s Size) String() string {
	if !s.known {
		return "-"
	}
	return strconv.FormatUint(s.n, 10)
}

// Entry is one file listed in a manifest. The package root entry "/" is never
// an Entry; it is carried by the Manifest mimetype.
type Entry struct {
	Path      string
	MediaType string
	Size      Size
}

// NewEntry returns an entry for path.
func NewEntry(path, mediaType string, size Size) Entry {
	return Entry{Path: path, MediaType: mediaType, Size: size}
}
