package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/file-analysis-mcp/pkg/localfs"
)

// ListFilesName is the registered name of the directory listing tool.
const ListFilesName = "list_files"

// NewListFilesTool creates the directory listing tool backed by fsys.
func NewListFilesTool(fsys *localfs.FS) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        ListFilesName,
			Description: "List files in a directory, split into files and subdirectories.",
			Annotations: &mcp.ToolAnnotations{Title: "List Files", ReadOnlyHint: true},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"directory": map[string]any{
						"type":        "string",
						"description": "Directory path to list files from (defaults to current directory)",
					},
				},
			},
		},
		Group:   GroupFS,
		Execute: executeListFiles(fsys),
	}
}

func executeListFiles(fsys *localfs.FS) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		dir := ReadStringDefault(args, "directory", ".")

		listing, err := fsys.ListDir(dir)
		switch {
		case errors.Is(err, localfs.ErrNotFound):
			return ErrorResultf(ListFilesName, "directory not found: %s", dir), nil
		case err != nil:
			return ErrorResultf(ListFilesName, "error listing directory: %v", err), nil
		}
		return JSONResult(listing), nil
	}
}
