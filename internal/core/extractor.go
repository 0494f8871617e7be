package core

import (
	"regexp"
	"sort"
)

// DefaultRootType is the GraphQL root operation type excluded from extraction.
const DefaultRootType = "Query"

var (
	// typeDeclPattern matches object type declarations like `type Author {`.
	typeDeclPattern = regexp.MustCompile(`type\s+(\w+)\s*\{`)

	// listRefPattern matches list-typed fields like `books: [Book]`.
	listRefPattern = regexp.MustCompile(`:\s*\[(\w+)\]`)
)

// TypeExtractor pulls type names out of raw schema text.
type TypeExtractor interface {
	ExtractTypes(schema string) []string
}

// patternTypeExtractor implements TypeExtractor with two regular expression
// scans. It does not parse the schema; anything that fails to match is
// ignored.
type patternTypeExtractor struct {
	rootType string
}

// NewTypeExtractor creates a TypeExtractor that drops rootType from its
// results. An empty rootType falls back to DefaultRootType.
func NewTypeExtractor(rootType string) TypeExtractor {
	if rootType == "" {
		rootType = DefaultRootType
	}
	return &patternTypeExtractor{rootType: rootType}
}

// ExtractTypes returns the declared object types plus the bracketed spelling
// of every list reference, deduplicated and sorted ascending. List references
// are recorded only in bracketed form.
func (e *patternTypeExtractor) ExtractTypes(schema string) []string {
	seen := make(map[string]struct{})

	for _, m := range typeDeclPattern.FindAllStringSubmatch(schema, -1) {
		seen[m[1]] = struct{}{}
	}
	for _, m := range listRefPattern.FindAllStringSubmatch(schema, -1) {
		seen["["+m[1]+"]"] = struct{}{}
	}

	delete(seen, e.rootType)

	types := make([]string, 0, len(seen))
	for name := range seen {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
