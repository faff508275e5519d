package cli

import (
	"fmt"

	"github.com/asicmf-labs/asicmf/internal/config"
	"github.com/spf13/cobra"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <container|manifest.xml>",
	Short: "Check a manifest for problems",
	Long: `Parse a manifest and report validation findings: a missing or unexpected
manifest:version and a package mimetype that differs from the expected one.
For containers the manifest is also cross-checked against the archive:
unlisted payload files, listed files that are missing, and size mismatches.

Malformed documents always fail. Findings fail the command in strict mode
(config key "strict", default true).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", true, "Fail when any finding is reported (default: config strict)")
	addExpectFlag(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	src, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	findings := collectFindings(src)

	strict := config.Strict()
	if cmd.Flags().Changed("strict") {
		strict = validateStrict
	}

	out := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintf(out, "%s: OK (%d entries)\n", src.path, src.result.Manifest.Len())
		return nil
	}

	for _, f := range findings {
		fmt.Fprintf(out, "%s: %s\n", src.path, f)
	}
	logger.Debug().Int("findings", len(findings)).Bool("strict", strict).Msg("validation finished")

	if strict {
		return fmt.Errorf("%s: %d finding(s)", src.path, len(findings))
	}
	return nil
}

// collectFindings returns the parse findings followed by the container
// consistency findings.
func collectFindings(src *source) []string {
	findings := append([]string{}, src.result.Errors...)
	if src.container != nil {
		findings = append(findings, src.container.Check(src.result.Manifest)...)
	}
	return findings
}
