package cli

import (
	"fmt"

	"github.com/asicmf-labs/asicmf/internal/branding"
	"github.com/asicmf-labs/asicmf/internal/config"
	"github.com/asicmf-labs/asicmf/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads, checks and writes the OASIS manifest.xml document that lists
every file of an ASiC or ODF container together with its media type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = logging.New(logging.Options{
			Level:   config.LogLevel(),
			Format:  config.LogFormat(),
			Output:  cmd.ErrOrStderr(),
			Verbose: verbose,
		})
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
