package layout

import (
	"fmt"
	"os"

	"github.com/asicmf-labs/asicmf/internal/manifest"
	"go.yaml.in/yaml/v3"
)

// Parse unmarshals YAML layout data. It does not validate it; call Validate
// first when the input comes from a user.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &l, nil
}

// ParseFile reads a layout file, validates it against the schema and
// returns the parsed layout. Schema violations are reported through the
// returned ValidationResult with a nil layout.
func ParseFile(path string) (*Layout, *ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, nil, fmt.Errorf("validating layout %s: %w", path, err)
	}
	if !result.Valid {
		return nil, result, nil
	}

	l, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, result, nil
}

// Manifest builds a manifest from the layout, preserving file order.
func (l *Layout) Manifest() *manifest.Manifest {
	var opts []manifest.Option
	if l.MimeType != "" {
		opts = append(opts, manifest.WithMimeType(l.MimeType))
	}
	m := manifest.New(opts...)
	for _, f := range l.Files {
		size := manifest.UnknownSize
		if f.Size != nil {
			size = manifest.SizeOf(*f.Size)
		}
		m.AddFile(f.Path, f.MediaType, size)
	}
	return m
}

// FromManifest returns the layout describing m.
func FromManifest(m *manifest.Manifest) *Layout {
	mimeType, _ := m.MimeType()
	l := &Layout{MimeType: mimeType, Files: []File{}}
	for _, e := range m.Files() {
		f := File{Path: e.Path, MediaType: e.MediaType}
		if n, ok := e.Size.Value(); ok {
			f.Size = &n
		}
		l.Files = append(l.Files, f)
	}
	return l
}

// Marshal renders the layout as YAML.
func Marshal(l *Layout) ([]byte, error) {
	out, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshaling layout: %w", err)
	}
	return out, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
