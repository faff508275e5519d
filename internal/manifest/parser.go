package manifest

import (
	"fmt"
	"io"
	"strings"

	"github.com/asicmf-labs/asicmf/internal/xmldoc"
)

const (
	tagManifest  = "manifest:manifest"
	tagFileEntry = "manifest:file-entry"

	attrNamespace = "xmlns:manifest"
	attrVersion   = "manifest:version"
	attrFullPath  = "manifest:full-path"
	attrMediaType = "manifest:media-type"
	attrSize      = "manifest:size"
)

// Result is a parsed manifest together with the soft findings recorded
// while reading it.
type Result struct {
	Manifest *Manifest
	// Errors lists validation findings in the order they were found. They
	// never cause Parse to fail.
	Errors []string
	// DeclaredVersion is the raw manifest:version of the document root.
	DeclaredVersion string
}

// Valid reports whether parsing recorded no findings.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

type parseConfig struct {
	expectedMimeType    string
	hasExpectedMimeType bool
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// ExpectMimeType records a finding when the root entry declares a different
// media type. The comparison is exact.
func ExpectMimeType(mimeType string) ParseOption {
	return func(c *parseConfig) {
		c.expectedMimeType = mimeType
		c.hasExpectedMimeType = true
	}
}

// Read parses a manifest document from r.
func Read(r io.Reader, opts ...ParseOption) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data, opts...)
}

// Parse parses a manifest document. Fatal problems return an error wrapping
// ErrMalformedDocument; everything else is reported in Result.Errors.
func Parse(data []byte, opts ...ParseOption) (*Result, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := xmldoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	root := doc.Root()

	var findings []string
	version, _ := xmldoc.Attr(root, attrVersion)
	switch {
	case version == "":
		findings = append(findings, "no manifest:version")
	case !strings.EqualFold(version, Version):
		findings = append(findings, "manifest:version != "+Version)
	}

	var (
		mimeType    string
		hasMimeType bool
		files       []Entry
	)
	for i, el := range xmldoc.ElementsByTagName(root, tagFileEntry) {
		fullPath, ok := xmldoc.Attr(el, attrFullPath)
		if !ok {
			return nil, fmt.Errorf("%w: file-entry %d: missing %s", ErrMalformedDocument, i, attrFullPath)
		}
		mediaType, ok := xmldoc.Attr(el, attrMediaType)
		if !ok {
			return nil, fmt.Errorf("%w: file-entry %q: missing %s", ErrMalformedDocument, fullPath, attrMediaType)
		}

		if fullPath == RootPath {
			mimeType, hasMimeType = mediaType, true
			if cfg.hasExpectedMimeType && mediaType != cfg.expectedMimeType {
				findings = append(findings, fmt.Sprintf("mime type does not match expected: %s vs %s", cfg.expectedMimeType, mediaType))
			}
			continue
		}

		size := UnknownSize
		if raw, ok := xmldoc.Attr(el, attrSize); ok {
			parsed, err := ParseSize(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: file-entry %q: %s: %w", ErrMalformedDocument, fullPath, attrSize, err)
			}
			size = parsed
		}
		files = append(files, NewEntry(fullPath, mediaType, size))
	}

	m := New()
	if hasMimeType {
		WithMimeType(mimeType)(m)
	}
	for _, f := range files {
		m.AddEntry(f)
	}

	return &Result{
		Manifest:        m,
		Errors:          findings,
		DeclaredVersion: version,
	}, nil
}
