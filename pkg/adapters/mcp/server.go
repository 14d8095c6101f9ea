// Package mcp exposes the card builder as an MCP (Model Context Protocol)
// server, so agent hosts can render card definitions as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cardwright/cardwright"
	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/catalog"
	"github.com/cardwright/cardwright/pkg/loader"
	"github.com/cardwright/cardwright/pkg/ports"
)

// Server wraps the builder and exposes it over MCP.
type Server struct {
	catalog    *catalog.Catalog
	translator ports.Translator
	mcpServer  *server.MCPServer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithTranslator enables the lang argument of render_card.
func WithTranslator(t ports.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

// WithCatalog sets the kind catalog used for rendering and introspection.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Server) {
		s.catalog = cat
	}
}

// NewServer creates a new MCP server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("cardwright-mcp", strings.TrimSpace(cardwright.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_card",
		mcp.WithDescription("Build an Adaptive Card from a flat YAML definition and return its JSON."),
		mcp.WithString("definition", mcp.Required(), mcp.Description("YAML card definition (steps list with optional schema/version)")),
		mcp.WithString("lang", mcp.Description("Target language code; translates text attributes before serializing")),
	)
	s.mcpServer.AddTool(renderTool, s.handleRenderCard)

	s.mcpServer.AddTool(mcp.NewTool("list_kinds",
		mcp.WithDescription("List the element kinds the catalog can construct."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kinds := s.catalog.Kinds()
		sort.Strings(kinds)
		jsonBytes, _ := json.Marshal(kinds)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleRenderCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := request.RequireString("definition")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("definition argument: %v", err)), nil
	}

	def, err := loader.Parse([]byte(definition))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid definition: %v", err)), nil
	}

	opts := []builder.Option{builder.WithCatalog(s.catalog)}
	if s.translator != nil {
		opts = append(opts, builder.WithTranslator(s.translator))
	}
	card, err := def.NewCard(opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build failed: %v", err)), nil
	}

	if lang := request.GetString("lang", ""); lang != "" {
		if err := card.Translate(ctx, lang); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("translate failed: %v", err)), nil
		}
	}

	out, err := card.JSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("serialize failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: cardwright://kinds
	s.mcpServer.AddResource(mcp.NewResource("cardwright://kinds", "Registered Element Kinds",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		kinds := s.catalog.Kinds()
		sort.Strings(kinds)
		jsonBytes, err := json.Marshal(kinds)
		if err != nil {
			return nil, fmt.Errorf("failed to encode kinds: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "cardwright://kinds",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
