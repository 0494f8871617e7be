// Package storage reads GraphQL schema files and writes Grafana alert
// provisioning files.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// ErrSchemaNotFound is returned when the schema file does not exist.
var ErrSchemaNotFound = errors.New("schema file not found")

// SchemaReader loads raw schema text.
type SchemaReader interface {
	ReadSchema(path string) (string, error)
}

// fileSchemaReader implements SchemaReader on the local filesystem.
type fileSchemaReader struct{}

// NewSchemaReader creates a SchemaReader that reads from disk.
func NewSchemaReader() SchemaReader {
	return &fileSchemaReader{}
}

// ReadSchema returns the full contents of path. A missing file yields an
// error wrapping ErrSchemaNotFound; other failures are returned as is.
func (r *fileSchemaReader) ReadSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		return "", fmt.Errorf("reading schema %s: %w", path, err)
	}
	return string(data), nil
}
