package manifest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/asicmf-labs/asicmf/internal/xmldoc"
)

type writeConfig struct {
	indent int
}

// WriteOption configures Write.
type WriteOption func(*writeConfig)

// WithIndent sets the number of spaces per nesting level. Zero or less
// writes the document without indentation.
func WithIndent(spaces int) WriteOption {
	return func(c *writeConfig) {
		c.indent = spaces
	}
}

// Write renders the manifest as manifest.xml to w. The root entry comes
// first when a mimetype is set, and entries below META-INF/ are skipped.
func (m *Manifest) Write(w io.Writer, opts ...WriteOption) error {
	cfg := writeConfig{indent: xmldoc.DefaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := xmldoc.New()
	root := doc.CreateElement(tagManifest)
	root.CreateAttr(attrNamespace, Namespace)
	root.CreateAttr(attrVersion, Version)

	if m.hasMimeType {
		pkg := root.CreateElement(tagFileEntry)
		pkg.CreateAttr(attrFullPath, RootPath)
		pkg.CreateAttr(attrMediaType, m.mimeType)
	}

	for _, f := range m.files {
		if strings.HasPrefix(f.Path, MetaInfPrefix) {
			continue
		}
		file := root.CreateElement(tagFileEntry)
		file.CreateAttr(attrFullPath, f.Path)
		file.CreateAttr(attrMediaType, f.MediaType)
		if f.Size.Known() {
			file.CreateAttr(attrSize, f.Size.String())
		}
	}

	if err := xmldoc.Render(doc, w, cfg.indent); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return nil
}

// Bytes renders the manifest into memory.
func (m *Manifest) Bytes(opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Write(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
