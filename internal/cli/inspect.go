package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/asicmf-labs/asicmf/internal/layout"
	"github.com/asicmf-labs/asicmf/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	inspectJSON bool
	inspectYAML bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <container|manifest.xml>",
	Short: "Show the contents of a manifest",
	Long: `Print the package mimetype, declared manifest version, file entries and
validation findings of a manifest. The argument is either a zip container
(the manifest is read from META-INF/manifest.xml) or a manifest.xml file.

With --yaml the entries are printed as a layout file that "create --layout"
accepts.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output in JSON format")
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "Output as a YAML layout")
	inspectCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	addExpectFlag(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the JSON form of inspect output.
type inspectReport struct {
	File            string         `json:"file"`
	Kind            string         `json:"kind"`
	MimeType        *string        `json:"mimetype"`
	DeclaredVersion string         `json:"declared_version"`
	Entries         []inspectEntry `json:"entries"`
	Findings        []string       `json:"findings"`
}

type inspectEntry struct {
	Path      string  `json:"path"`
	MediaType string  `json:"media_type"`
	Size      *uint64 `json:"size"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	src, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	m := src.result.Manifest

	if inspectYAML {
		data, err := layout.Marshal(layout.FromManifest(m))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	report := buildInspectReport(src)
	if inspectJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printInspectReport(out, report)
	return nil
}

func buildInspectReport(src *source) inspectReport {
	m := src.result.Manifest
	report := inspectReport{
		File:            src.path,
		Kind:            src.kind(),
		DeclaredVersion: src.result.DeclaredVersion,
		Entries:         []inspectEntry{},
		Findings:        append([]string{}, src.result.Errors...),
	}
	if mt, ok := m.MimeType(); ok {
		report.MimeType = &mt
	}
	for _, e := range m.Files() {
		entry := inspectEntry{Path: e.Path, MediaType: e.MediaType}
		if n, ok := e.Size.Value(); ok {
			entry.Size = &n
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

func printInspectReport(out io.Writer, r inspectReport) {
	mimeType := "(none)"
	if r.MimeType != nil {
		mimeType = *r.MimeType
	}

	fmt.Fprintf(out, "File:      %s (%s)\n", r.File, r.Kind)
	fmt.Fprintf(out, "Mimetype:  %s\n", mimeType)
	fmt.Fprintf(out, "Version:   %s\n", describeVersion(r.DeclaredVersion))
	fmt.Fprintf(out, "Entries:   %d\n", len(r.Entries))

	if len(r.Entries) > 0 {
		fmt.Fprintln(out)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tMEDIA TYPE\tSIZE")
		for _, e := range r.Entries {
			size := "-"
			if e.Size != nil {
				size = fmt.Sprintf("%d", *e.Size)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Path, e.MediaType, size)
		}
		w.Flush()
	}

	if len(r.Findings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Findings:")
		for _, f := range r.Findings {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
}

// describeVersion annotates a declared manifest:version relative to the
// version this tool writes.
func describeVersion(declared string) string {
	if declared == "" {
		return "(missing)"
	}
	cmp, err := manifest.CompareVersion(declared)
	if err != nil {
		return declared + " (unrecognized)"
	}
	switch {
	case cmp < 0:
		return declared + " (older than " + manifest.Version + ")"
	case cmp > 0:
		return declared + " (newer than " + manifest.Version + ")"
	default:
		return declared
	}
}
