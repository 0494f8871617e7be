package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/alertgen/internal/storage"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the GraphQL types that would get alert rules",
	Long: `Extract type names from the schema and print one per line in the order
rules would be generated. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Extractor == nil {
			return fmt.Errorf("type extractor not initialized")
		}

		opts := resolveGenerateOpts()
		out := cmd.OutOrStdout()

		schema, err := storage.NewSchemaReader().ReadSchema(opts.SchemaPath)
		if err != nil {
			if errors.Is(err, storage.ErrSchemaNotFound) {
				printSchemaNotFound(out, opts.SchemaPath)
				return nil
			}
			return err
		}

		types := Extractor.ExtractTypes(schema)
		if len(types) == 0 {
			fmt.Fprintln(out, "No types found.")
			return nil
		}
		for _, t := range types {
			fmt.Fprintln(out, t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
