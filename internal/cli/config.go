package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/asicmf-labs/asicmf/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change codec defaults",
	Long: `Show or change the defaults used by inspect, validate, create and sync.

Settings live in ` + "`config.yaml`" + ` under the asicmf home directory and can be
overridden per run with ASICMF_<KEY> environment variables.

  expected_mimetype  package mimetype every manifest must declare (empty: none)
  indent             spaces per level when writing manifest.xml (0: compact)
  strict             fail validate when any finding is reported
  log_level          trace, debug, info, warn or error
  log_format         pretty or json`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a default in config.yaml",
	Example: `  asicmf config set expected_mimetype application/vnd.etsi.asic-e+zip
  asicmf config set indent 0`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		logger.Debug().Str("key", key).Str("file", config.FilePath()).Msg("config saved")
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print the effective value of a setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CheckKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting with its value and where it comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
		for _, key := range config.Keys {
			value := config.Get(key)
			if value == "" {
				value = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", key, value, config.Source(key))
		}
		return w.Flush()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
	},
}
