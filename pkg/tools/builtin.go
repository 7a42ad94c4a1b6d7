package tools

import (
	"github.com/beeper/file-analysis-mcp/pkg/localfs"
	"github.com/beeper/file-analysis-mcp/pkg/tokens"
)

// Tool group constants.
const (
	GroupText = "group:text"
	GroupFS   = "group:fs"
)

// Deps carries the collaborators the builtin tools are constructed from.
// Tools receive their dependencies explicitly; there is no process-wide
// registration.
type Deps struct {
	DefaultTopWords int
	FS              *localfs.FS
	Tokens          *tokens.Counter // nil disables the count_tokens tool
}

// BuiltinTools returns all builtin tools wired to deps.
func BuiltinTools(deps Deps) []*Tool {
	fsys := deps.FS
	if fsys == nil {
		fsys = &localfs.FS{}
	}
	builtin := []*Tool{
		NewAnalyzeTextTool(deps.DefaultTopWords),
		NewReadFileTool(fsys),
		NewListFilesTool(fsys),
	}
	if deps.Tokens != nil {
		builtin = append(builtin, NewCountTokensTool(deps.Tokens))
	}
	return builtin
}

// DefaultRegistry returns a registry with all builtin tools registered.
func DefaultRegistry(deps Deps) *Registry {
	reg := NewRegistry()
	for _, tool := range BuiltinTools(deps) {
		reg.Register(tool)
	}
	return reg
}
