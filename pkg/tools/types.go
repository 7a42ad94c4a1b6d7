// Package tools defines the externally callable tools of the file
// analysis server: definitions, argument readers, structured results, and
// the registry the hosting layer serves from.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool definition with its execution logic.
type Tool struct {
	mcp.Tool        // Name, Description, InputSchema
	Group    string // group:text, group:fs
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result standardizes tool output.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is one block of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed successfully.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the tool failed with an error.
	ResultError ResultStatus = "error"
)

// Text returns the text content from the result, or the error message if
// the result is an error.
func (r *Result) Text() string {
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}

// IsError returns true if the result indicates an error.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}
