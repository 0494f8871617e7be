package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/alertgen/pkg/models"
	"gopkg.in/yaml.v3"
)

// documentIndent matches the two-space layout Grafana's own exports use.
const documentIndent = 2

// DocumentWriter persists an alert provisioning document.
type DocumentWriter interface {
	WriteDocument(path string, doc *models.AlertDocument) error
}

// fileDocumentWriter implements DocumentWriter by writing YAML to disk.
type fileDocumentWriter struct{}

// NewDocumentWriter creates a DocumentWriter that writes YAML files.
func NewDocumentWriter() DocumentWriter {
	return &fileDocumentWriter{}
}

// WriteDocument encodes doc and writes it to path, creating parent
// directories and replacing any existing file.
func (w *fileDocumentWriter) WriteDocument(path string, doc *models.AlertDocument) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("writing alerts: creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing alerts: writing file: %w", err)
	}
	return nil
}

// EncodeDocument renders doc as YAML in struct field order.
func EncodeDocument(doc *models.AlertDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("encoding alerts: document is nil")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(documentIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding alerts: marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding alerts: flushing YAML: %w", err)
	}
	return buf.Bytes(), nil
}
