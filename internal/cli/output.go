package cli

import (
	"fmt"

	"github.com/asicmf-labs/asicmf/internal/config"
	"github.com/asicmf-labs/asicmf/internal/manifest"
	"github.com/asicmf-labs/asicmf/internal/platform"
	"github.com/spf13/cobra"
)

// writeManifest renders m to outputPath, or to the command's stdout when
// outputPath is empty.
func writeManifest(cmd *cobra.Command, m *manifest.Manifest, outputPath string) error {
	data, err := m.Bytes(manifest.WithIndent(config.Indent()))
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := platform.WriteFileAtomic(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	logger.Info().Str("path", outputPath).Int("entries", m.Len()).Msg("wrote manifest")
	return nil
}
