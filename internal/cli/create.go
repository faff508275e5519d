package cli

import (
	"fmt"
	"strings"

	"github.com/asicmf-labs/asicmf/internal/layout"
	"github.com/asicmf-labs/asicmf/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	createLayout   string
	createMimeType string
	createFiles    []string
	createOutput   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a new manifest.xml",
	Long: `Build a manifest from a YAML layout file, from flags, or both, and write it
as manifest.xml. Entries from --file are appended after the layout entries and
--mimetype overrides the layout's mimetype.

Examples:
  asicmf create --mimetype application/vnd.etsi.asic-e+zip --file doc.xml=text/xml:42
  asicmf create --layout files.yaml -o META-INF/manifest.xml`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createLayout, "layout", "", "YAML layout file describing the manifest")
	createCmd.Flags().StringVar(&createMimeType, "mimetype", "", "Package mimetype (root entry media type)")
	createCmd.Flags().StringArrayVar(&createFiles, "file", nil, "Entry as path=media-type[:size] (repeatable)")
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createLayout == "" && createMimeType == "" && len(createFiles) == 0 {
		return fmt.Errorf("nothing to write: pass --layout, --mimetype or --file")
	}

	m := manifest.New()
	if createLayout != "" {
		l, result, err := layout.ParseFile(createLayout)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", createLayout, issue)
			}
			return fmt.Errorf("layout %s is invalid: %d issue(s)", createLayout, len(result.Issues))
		}
		m = l.Manifest()
	}

	if createMimeType != "" {
		mb := manifest.New(manifest.WithMimeType(createMimeType))
		for _, e := range m.Files() {
			mb.AddEntry(e)
		}
		m = mb
	}

	for _, arg := range createFiles {
		e, err := parseFileSpec(arg)
		if err != nil {
			return err
		}
		m.AddEntry(e)
	}

	return writeManifest(cmd, m, createOutput)
}

// parseFileSpec parses "path=media-type[:size]".
func parseFileSpec(arg string) (manifest.Entry, error) {
	path, rest, ok := strings.Cut(arg, "=")
	if !ok || path == "" {
		return manifest.Entry{}, fmt.Errorf("invalid --file %q: want path=media-type[:size]", arg)
	}
	if path == manifest.RootPath {
		return manifest.Entry{}, fmt.Errorf("invalid --file %q: use --mimetype for the root entry", arg)
	}

	mediaType, rawSize, hasSize := cutLast(rest, ":")
	size := manifest.UnknownSize
	if hasSize {
		parsed, err := manifest.ParseSize(rawSize)
		if err != nil {
			return manifest.Entry{}, fmt.Errorf("invalid --file %q: size %q is not a non-negative integer", arg, rawSize)
		}
		size = parsed
	}
	return manifest.NewEntry(path, mediaType, size), nil
}

// cutLast slices s around the last instance of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
