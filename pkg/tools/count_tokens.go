package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/file-analysis-mcp/pkg/tokens"
)

// CountTokensName is the registered name of the token counting tool.
const CountTokensName = "count_tokens"

type tokenCountPayload struct {
	TokenCount int    `json:"token_count"`
	Encoding   string `json:"encoding"`
}

// NewCountTokensTool creates the token counting tool backed by counter.
func NewCountTokensTool(counter *tokens.Counter) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        CountTokensName,
			Description: "Count the tokens in text under a tiktoken encoding (default cl100k_base).",
			Annotations: &mcp.ToolAnnotations{Title: "Count Tokens"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The text to count tokens in",
					},
					"encoding": map[string]any{
						"type":        "string",
						"description": "tiktoken encoding name, e.g. cl100k_base or o200k_base",
					},
				},
				"required": []string{"text"},
			},
		},
		Group:   GroupText,
		Execute: executeCountTokens(counter),
	}
}

func executeCountTokens(counter *tokens.Counter) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		text, err := ReadText(args, "text", true)
		if err != nil {
			return ErrorResult(CountTokensName, err.Error()), nil
		}
		encoding := ReadStringDefault(args, "encoding", tokens.DefaultEncoding)

		count, used, err := counter.Count(text, encoding)
		if err != nil {
			return ErrorResultf(CountTokensName, "error counting tokens: %v", err), nil
		}
		return JSONResult(tokenCountPayload{TokenCount: count, Encoding: used}), nil
	}
}
