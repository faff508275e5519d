package manifest

import (
	"fmt"
	"slices"
)

const (
	// Path is the location of the manifest inside a container.
	Path = "META-INF/manifest.xml"

	// Namespace is the OASIS manifest namespace bound to the "manifest" prefix.
	Namespace = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"

	// Version is the manifest:version this package reads and writes.
	Version = "1.2"

	// RootPath is the full-path of the package root entry.
	RootPath = "/"

	// MetaInfPrefix marks container metadata that is never written back.
	MetaInfPrefix = "META-INF/"
)

// Manifest is the in-memory form of a manifest.xml document.
type Manifest struct {
	mimeType    string
	hasMimeType bool
	files       []Entry
}

// Option configures a Manifest built by New.
type Option func(*Manifest)

// WithMimeType sets the package mimetype, the media type of the root entry.
func WithMimeType(mimeType string) Option {
	return func(m *Manifest) {
		m.mimeType = mimeType
		m.hasMimeType = true
	}
}

// New returns an empty manifest.
func New(opts ...Option) *Manifest {
	m := &Manifest{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MimeType returns the package mimetype and whether one is set.
func (m *Manifest) MimeType() (string, bool) {
	return m.mimeType, m.hasMimeType
}

// Files returns a copy of the entries in insertion order.
func (m *Manifest) Files() []Entry {
	return slices.Clone(m.files)
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.files)
}

// Lookup returns the first entry whose path equals path.
func (m *Manifest) Lookup(path string) (Entry, bool) {
	i := m.index(path)
	if i < 0 {
		return Entry{}, false
	}
	return m.files[i], true
}

// AddFile appends a new entry. Paths are not checked for duplicates.
func (m *Manifest) AddFile(path, mediaType string, size Size) *Manifest {
	return m.AddEntry(NewEntry(path, mediaType, size))
}

// AddEntry appends e. Paths are not checked for duplicates.
func (m *Manifest) AddEntry(e Entry) *Manifest {
	m.files = append(m.files, e)
	return m
}

// SetFileSize updates the size of the first entry whose path equals path.
func (m *Manifest) SetFileSize(path string, size Size) error {
	i := m.index(path)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	m.files[i].Size = size
	return nil
}

func (m *Manifest) index(path string) int {
	return slices.IndexFunc(m.files, func(e Entry) bool {
		return e.Path == path
	})
}
