package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "alertgen",
	Short: "Generate Grafana latency alerts from a GraphQL schema",
	Long: `alertgen reads a GraphQL schema, extracts the object types and list types
it declares, and writes a Grafana alerting provisioning file with one p95
latency rule per type.

Run without a subcommand it behaves like "alertgen generate".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "alertgen %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPathFlag, "schema", "",
		"Path to the GraphQL schema (default from .alertconfig, else schema.graphql)")
	rootCmd.PersistentFlags().StringVar(&outputPathFlag, "output", "",
		"Path of the alert file to write (default from .alertconfig)")
	registerGenerateFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
