package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/file-analysis-mcp/pkg/localfs"
)

// ReadFileName is the registered name of the file reading tool.
const ReadFileName = "read_file"

// NewReadFileTool creates the file reading tool backed by fsys.
func NewReadFileTool(fsys *localfs.FS) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        ReadFileName,
			Description: "Read the contents of a text file.",
			Annotations: &mcp.ToolAnnotations{Title: "Read File", ReadOnlyHint: true},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"file_path": map[string]any{
						"type":        "string",
						"description": "Path to the file to read",
					},
				},
				"required": []string{"file_path"},
			},
		},
		Group:   GroupFS,
		Execute: executeReadFile(fsys),
	}
}

func executeReadFile(fsys *localfs.FS) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		path, err := ReadString(args, "file_path", true)
		if err != nil {
			return ErrorResult(ReadFileName, err.Error()), nil
		}

		content, err := fsys.ReadFile(path)
		switch {
		case errors.Is(err, localfs.ErrNotFound):
			return ErrorResultf(ReadFileName, "file not found at %s", path), nil
		case err != nil:
			return ErrorResultf(ReadFileName, "error reading file: %v", err), nil
		}
		return TextResult(content), nil
	}
}
