package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTypesCmd_ListsTypes(t *testing.T) {
	withServices(t)
	schemaPath := filepath.Join(t.TempDir(), "schema.graphql")
	if err := os.WriteFile(schemaPath, []byte(bookSchema), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "types", "--schema", schemaPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "Author\nBook\n[Book]" {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestTypesCmd_NoTypes(t *testing.T) {
	withServices(t)
	schemaPath := filepath.Join(t.TempDir(), "schema.graphql")
	if err := os.WriteFile(schemaPath, []byte("scalar Date\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "types", "--schema", schemaPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No types found.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestTypesCmd_MissingSchema(t *testing.T) {
	withServices(t)
	schemaPath := filepath.Join(t.TempDir(), "missing.graphql")

	out, err := runRoot(t, "types", "--schema", schemaPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Error: The file 'missing.graphql' was not found.") {
		t.Errorf("unexpected output: %q", out)
	}
}
