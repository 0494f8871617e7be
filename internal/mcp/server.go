// Package mcp provides an MCP (Model Context Protocol) server that exposes
// alert generation as tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/alertgen/internal/core"
	"github.com/valter-silva-au/alertgen/internal/storage"
)

// Server wraps the extractor and builder and exposes them as MCP tools.
// Tools work on schema text passed in the request and never touch disk.
type Server struct {
	server    *gomcp.Server
	extractor core.TypeExtractor
	builder   core.AlertDocumentBuilder
}

// NewServer creates a new MCP server around the given extractor and builder.
func NewServer(extractor core.TypeExtractor, builder core.AlertDocumentBuilder, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		extractor: extractor,
		builder:   builder,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "alertgen", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type schemaInput struct {
	Schema string `json:"schema" jsonschema:"required,GraphQL schema text using type Name { ... } declarations"`
}

type extractTypesOutput struct {
	Types []string `json:"types"`
	Count int      `json:"count"`
}

type generateAlertsOutput struct {
	Types     []string `json:"types"`
	RuleCount int      `json:"rule_count"`
	YAML      string   `json:"yaml"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "extract_types",
		Description: "Extract GraphQL object types and bracketed list types from schema text. The root Query type is excluded.",
	}, s.handleExtractTypes)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "generate_alerts",
		Description: "Generate a Grafana alert provisioning YAML document with one p95 latency rule per extracted GraphQL type.",
	}, s.handleGenerateAlerts)
}

// --- Tool handlers ---

func (s *Server) handleExtractTypes(_ context.Context, _ *gomcp.CallToolRequest, input schemaInput) (*gomcp.CallToolResult, extractTypesOutput, error) {
	if input.Schema == "" {
		return errorResult("schema is required"), extractTypesOutput{Types: []string{}}, nil
	}

	types := s.extractor.ExtractTypes(input.Schema)
	return nil, extractTypesOutput{Types: types, Count: len(types)}, nil
}

func (s *Server) handleGenerateAlerts(_ context.Context, _ *gomcp.CallToolRequest, input schemaInput) (*gomcp.CallToolResult, generateAlertsOutput, error) {
	empty := generateAlertsOutput{Types: []string{}}
	if input.Schema == "" {
		return errorResult("schema is required"), empty, nil
	}

	types := s.extractor.ExtractTypes(input.Schema)
	doc, err := s.builder.Build(types)
	if err != nil {
		return errorResult(fmt.Sprintf("building alert document: %s", err)), empty, nil
	}

	data, err := storage.EncodeDocument(doc)
	if err != nil {
		return errorResult(err.Error()), empty, nil
	}

	return nil, generateAlertsOutput{
		Types:     types,
		RuleCount: doc.RuleCount(),
		YAML:      string(data),
	}, nil
}

// --- Helpers ---

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
