package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/asicmf-labs/asicmf/internal/config"
	"github.com/asicmf-labs/asicmf/internal/container"
	"github.com/asicmf-labs/asicmf/internal/manifest"
	"github.com/spf13/cobra"
)

// source is a manifest loaded from a command argument, either a bare
// manifest.xml or the manifest inside a zip container.
type source struct {
	path      string
	result    *manifest.Result
	container *container.Container // nil for a bare manifest file
}

func (s *source) kind() string {
	if s.container != nil {
		return "container"
	}
	return "manifest"
}

func (s *source) Close() error {
	if s.container == nil {
		return nil
	}
	return s.container.Close()
}

// expectMimeType is shared by the commands that read manifests.
var expectMimeType string

func addExpectFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&expectMimeType, "expect-mimetype", "", "Expected package mimetype (default: config expected_mimetype, or the container's mimetype member)")
}

// parseOptions resolves the expected mimetype from the flag, then config.
func parseOptions() []manifest.ParseOption {
	if expectMimeType != "" {
		return []manifest.ParseOption{manifest.ExpectMimeType(expectMimeType)}
	}
	if mt, ok := config.ExpectedMimeType(); ok {
		return []manifest.ParseOption{manifest.ExpectMimeType(mt)}
	}
	return nil
}

// openSource loads path as a container when it is a zip archive and as a
// manifest.xml document otherwise. The caller must Close the source.
func openSource(path string) (*source, error) {
	opts := parseOptions()

	c, err := container.Open(path, container.WithLogger(logger))
	switch {
	case err == nil:
		res, err := c.ReadManifest(opts...)
		if err != nil {
			c.Close()
			return nil, err
		}
		return &source{path: path, result: res, container: c}, nil
	case errors.Is(err, container.ErrNotContainer):
		logger.Debug().Str("path", path).Msg("not a zip archive, reading as manifest.xml")
	default:
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := manifest.Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &source{path: path, result: res}, nil
}
