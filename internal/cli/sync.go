package cli

import (
	"fmt"

	"github.com/asicmf-labs/asicmf/internal/container"
	"github.com/spf13/cobra"
)

var syncOutput string

var syncCmd = &cobra.Command{
	Use:   "sync <container>",
	Short: "Rewrite a container's manifest with the actual file sizes",
	Long: `Read META-INF/manifest.xml from a zip container, set the size of every listed
entry to the uncompressed size of the matching archive member, and write the
resulting manifest. Entries below META-INF/ are not written. The container
itself is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&syncOutput, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	c, err := container.Open(args[0], container.WithLogger(logger))
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.ReadManifest()
	if err != nil {
		return err
	}
	for _, f := range res.Errors {
		logger.Warn().Str("container", c.Path()).Msg(f)
	}

	updated, err := c.SyncSizes(res.Manifest)
	if err != nil {
		return fmt.Errorf("syncing sizes: %w", err)
	}
	logger.Info().Str("container", c.Path()).Int("updated", updated).Msg("synced entry sizes")

	return writeManifest(cmd, res.Manifest, syncOutput)
}
