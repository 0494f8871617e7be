package core

import (
	"fmt"

	"github.com/valter-silva-au/alertgen/internal/storage"
	"github.com/valter-silva-au/alertgen/pkg/models"
	"go.uber.org/zap"
)

// GenerateOpts selects the input and output of one generation run.
type GenerateOpts struct {
	SchemaPath string
	OutputPath string
	// DryRun encodes the document without writing OutputPath.
	DryRun bool
}

// GenerateResult describes what a generation run produced.
type GenerateResult struct {
	SchemaPath string
	OutputPath string
	Types      []string
	Document   *models.AlertDocument
	// Encoded is the YAML rendering, set only for dry runs.
	Encoded []byte
	Written bool
}

// AlertGenerator runs the read, extract, build, write pipeline.
type AlertGenerator interface {
	Generate(opts GenerateOpts) (*GenerateResult, error)
}

type alertGenerator struct {
	reader    storage.SchemaReader
	writer    storage.DocumentWriter
	extractor TypeExtractor
	builder   AlertDocumentBuilder
	log       *zap.Logger
}

// NewAlertGenerator wires an AlertGenerator from its stages. A nil log
// discards diagnostics.
func NewAlertGenerator(reader storage.SchemaReader, writer storage.DocumentWriter, extractor TypeExtractor, builder AlertDocumentBuilder, log *zap.Logger) AlertGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &alertGenerator{
		reader:    reader,
		writer:    writer,
		extractor: extractor,
		builder:   builder,
		log:       log,
	}
}

// Generate reads the schema once, builds the alert document and writes it
// once. A missing schema returns an error wrapping storage.ErrSchemaNotFound
// and nothing is written.
func (g *alertGenerator) Generate(opts GenerateOpts) (*GenerateResult, error) {
	if opts.SchemaPath == "" {
		return nil, fmt.Errorf("schema path is required")
	}
	if opts.OutputPath == "" && !opts.DryRun {
		return nil, fmt.Errorf("output path is required")
	}

	log := g.log.With(zap.String("schema", opts.SchemaPath))

	schema, err := g.reader.ReadSchema(opts.SchemaPath)
	if err != nil {
		return nil, err
	}
	log.Debug("schema loaded", zap.Int("bytes", len(schema)))

	types := g.extractor.ExtractTypes(schema)
	log.Debug("types extracted", zap.Strings("types", types))

	doc, err := g.builder.Build(types)
	if err != nil {
		return nil, fmt.Errorf("building alert document: %w", err)
	}

	result := &GenerateResult{
		SchemaPath: opts.SchemaPath,
		OutputPath: opts.OutputPath,
		Types:      types,
		Document:   doc,
	}

	if opts.DryRun {
		result.Encoded, err = storage.EncodeDocument(doc)
		if err != nil {
			return nil, err
		}
		log.Debug("dry run, output not written", zap.Int("rules", doc.RuleCount()))
		return result, nil
	}

	if err := g.writer.WriteDocument(opts.OutputPath, doc); err != nil {
		return nil, err
	}
	result.Written = true
	log.Info("alerts written", zap.String("output", opts.OutputPath), zap.Int("rules", doc.RuleCount()))

	return result, nil
}
