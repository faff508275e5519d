package container

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/asicmf-labs/asicmf/internal/manifest"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog"
)

// MimeTypeMember is the container member holding the package mimetype.
const MimeTypeMember = "mimetype"

// File is a regular member of the container.
type File struct {
	Name string
	Size uint64
}

// Container is an open zip container.
type Container struct {
	path   string
	zr     *zip.ReadCloser
	byName map[string]*zip.File
	logger zerolog.Logger
}

// Option configures Open.
type Option func(*Container)

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// Open opens the zip container at path. The caller must Close it.
func Open(path string, opts ...Option) (*Container, error) {
	c := &Container{path: path, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotContainer, path)
		}
		return nil, fmt.Errorf("opening container %s: %w", path, err)
	}
	c.zr = zr

	c.byName = make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, dup := c.byName[f.Name]; dup {
			c.logger.Warn().Str("member", f.Name).Msg("duplicate container member, keeping the first")
			continue
		}
		c.byName[f.Name] = f
	}

	c.logger.Debug().Str("path", path).Int("members", len(c.byName)).Msg("opened container")
	return c, nil
}

// Close releases the underlying archive.
func (c *Container) Close() error {
	return c.zr.Close()
}

// Path returns the file the container was opened from.
func (c *Container) Path() string {
	return c.path
}

// Files returns the regular members in archive order.
func (c *Container) Files() []File {
	var files []File
	for _, f := range c.zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if c.byName[f.Name] != f {
			continue
		}
		files = append(files, File{Name: f.Name, Size: f.UncompressedSize64})
	}
	return files
}

// Has reports whether the container has a regular member called name.
func (c *Container) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// ReadFile returns the content of member name.
func (c *Container) ReadFile(name string) ([]byte, error) {
	f, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s: member %s not found", c.path, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: opening member %s: %w", c.path, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: reading member %s: %w", c.path, name, err)
	}
	return data, nil
}

// MimeType returns the content of the mimetype member.
func (c *Container) MimeType() (string, bool) {
	if !c.Has(MimeTypeMember) {
		return "", false
	}
	data, err := c.ReadFile(MimeTypeMember)
	if err != nil {
		c.logger.Warn().Err(err).Msg("unreadable mimetype member")
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// ReadManifest parses META-INF/manifest.xml. The mimetype member, when
// present, is the expected package mimetype; opts are applied after it, so
// an explicit ExpectMimeType overrides the member.
func (c *Container) ReadManifest(opts ...manifest.ParseOption) (*manifest.Result, error) {
	if !c.Has(manifest.Path) {
		return nil, fmt.Errorf("%w: %s", ErrNoManifest, c.path)
	}
	data, err := c.ReadFile(manifest.Path)
	if err != nil {
		return nil, err
	}

	var parseOpts []manifest.ParseOption
	if mt, ok := c.MimeType(); ok {
		parseOpts = append(parseOpts, manifest.ExpectMimeType(mt))
	}
	parseOpts = append(parseOpts, opts...)

	res, err := manifest.Parse(data, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	c.logger.Debug().
		Int("entries", res.Manifest.Len()).
		Int("findings", len(res.Errors)).
		Msg("read manifest")
	return res, nil
}
