// Package server hosts the tool registry over the MCP stdio transport.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/beeper/file-analysis-mcp/pkg/config"
	"github.com/beeper/file-analysis-mcp/pkg/localfs"
	"github.com/beeper/file-analysis-mcp/pkg/tools"
)

// Server wires a tool registry and the file resource into an MCP server.
type Server struct {
	cfg      *config.Config
	registry *tools.Registry
	fsys     *localfs.FS
	log      zerolog.Logger
	mcp      *mcp.Server
}

// New builds a Server from its collaborators. The registry and filesystem
// are injected by the caller; nothing registers itself globally.
func New(cfg *config.Config, registry *tools.Registry, fsys *localfs.FS, log zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		registry: registry,
		fsys:     fsys,
		log:      log.With().Str("component", "mcp_server").Logger(),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Title:   "File Analysis",
		Version: cfg.Server.Version,
	}, &mcp.ServerOptions{
		Instructions: cfg.Server.Instructions,
	})

	for _, tool := range registry.All() {
		s.addTool(tool)
	}
	s.addFileResource()
	return s
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects. Log output must go to stderr; stdout carries the protocol.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().
		Str("name", s.cfg.Server.Name).
		Str("version", s.cfg.Server.Version).
		Int("tools", len(s.registry.All())).
		Msg("Starting MCP server on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) addTool(tool *tools.Tool) {
	def := tool.Tool
	name := tool.Name
	exec := tool.Execute
	s.mcp.AddTool(&def, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callLog := s.log.With().
			Str("tool", name).
			Str("call_id", xid.New().String()).
			Logger()
		start := time.Now()

		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			callLog.Warn().Err(err).Msg("Failed to decode tool arguments")
			return errorCallResult(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		result, err := exec(ctx, args)
		if err != nil {
			callLog.Err(err).Dur("duration", time.Since(start)).Msg("Tool execution failed")
			return errorCallResult(err.Error()), nil
		}

		callLog.Debug().
			Str("status", string(result.Status)).
			Dur("duration", time.Since(start)).
			Msg("Tool call finished")
		return toCallToolResult(result), nil
	})
}

func (s *Server) addFileResource() {
	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "file://{path}",
		Name:        "file",
		Description: "Access a file on the local filesystem as a text resource.",
		MIMEType:    "text/plain",
	}, s.readFileResource)
}

func (s *Server) readFileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	content, err := s.fsys.ReadFile(uri)
	if errors.Is(err, localfs.ErrNotFound) {
		return nil, fmt.Errorf("file not found at %s", uri)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     content,
		}},
	}, nil
}

// decodeArguments normalizes tool call arguments into a map. The SDK
// hands either raw JSON or an already-decoded value depending on the
// transport path.
func decodeArguments(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case json.RawMessage:
		return unmarshalArguments([]byte(v))
	case []byte:
		return unmarshalArguments(v)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unsupported argument shape: %w", err)
	}
	return unmarshalArguments(data)
}

func unmarshalArguments(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// toCallToolResult maps a tool result onto the wire shape.
func toCallToolResult(result *tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: result.IsError()}
	for _, block := range result.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 {
		out.Content = []mcp.Content{&mcp.TextContent{Text: result.Text()}}
	}
	return out
}

func errorCallResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}
