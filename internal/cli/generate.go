package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/alertgen/internal/core"
	"github.com/valter-silva-au/alertgen/internal/storage"
)

var (
	schemaPathFlag string
	outputPathFlag string
	seedFlag       int64
	dryRunFlag     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the alert provisioning file from the schema",
	Long: `Read the GraphQL schema, extract its types and write one p95 latency
alert rule per type to the output file. An existing output file is replaced.

Paths come from --schema/--output, then .alertconfig, then the defaults
schema.graphql and ../grafana-stack/alerts/alerts.yaml.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	registerGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// registerGenerateFlags binds the generation flags to cmd. Root and generate
// share the same variables so both spellings behave identically.
func registerGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0,
		"Seed the rule UID generator for reproducible output")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"Print the generated YAML instead of writing the output file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if Generator == nil {
		return fmt.Errorf("alert generator not initialized")
	}

	gen := Generator
	if cmd.Flags().Changed("seed") {
		gen = seededGenerator(seedFlag)
	}

	opts := resolveGenerateOpts()
	opts.DryRun = dryRunFlag

	out := cmd.OutOrStdout()
	result, err := gen.Generate(opts)
	if err != nil {
		if errors.Is(err, storage.ErrSchemaNotFound) {
			printSchemaNotFound(out, opts.SchemaPath)
			return nil
		}
		return fmt.Errorf("generating alerts: %w", err)
	}

	fmt.Fprintf(out, "Extracted types from '%s': %s\n", result.SchemaPath, formatTypeList(result.Types))

	if result.Encoded != nil {
		_, err := out.Write(result.Encoded)
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Successfully generated alerts and saved to '%s'.", result.OutputPath)))
	return nil
}

// resolveGenerateOpts applies flag overrides on top of the loaded config.
func resolveGenerateOpts() core.GenerateOpts {
	cfg := Config
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	opts := core.GenerateOpts{
		SchemaPath: cfg.Schema.Path,
		OutputPath: cfg.Output.Path,
	}
	if schemaPathFlag != "" {
		opts.SchemaPath = schemaPathFlag
	}
	if outputPathFlag != "" {
		opts.OutputPath = outputPathFlag
	}
	return opts
}

// seededGenerator builds a generator whose rule UIDs are reproducible.
func seededGenerator(seed int64) core.AlertGenerator {
	cfg := Config
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	builder := core.NewAlertDocumentBuilder(core.RuleTemplateFromConfig(cfg), core.NewSeededUIDGenerator(seed))
	return core.NewAlertGenerator(
		storage.NewSchemaReader(),
		storage.NewDocumentWriter(),
		core.NewTypeExtractor(cfg.Schema.RootType),
		builder,
		Logger,
	)
}

// printSchemaNotFound writes the two-line missing schema diagnostic.
func printSchemaNotFound(w io.Writer, schemaPath string) {
	name := filepath.Base(schemaPath)
	location := "the current directory"
	if dir := filepath.Dir(schemaPath); dir != "." {
		location = dir
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: The file '%s' was not found.", name)))
	fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf("Please make sure your %s file is in %s.", name, location)))
}

// formatTypeList renders type names as [A, B, [B]].
func formatTypeList(types []string) string {
	return "[" + strings.Join(types, ", ") + "]"
}
