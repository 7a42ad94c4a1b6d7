package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/file-analysis-mcp/pkg/textstats"
)

// AnalyzeTextName is the registered name of the text analysis tool.
const AnalyzeTextName = "analyze_text"

// NewAnalyzeTextTool creates the text analysis tool. defaultTopWords is
// the top-word table size used when the caller does not pass one; values
// below zero fall back to the engine default.
func NewAnalyzeTextTool(defaultTopWords int) *Tool {
	if defaultTopWords < 0 {
		defaultTopWords = textstats.DefaultTopWords
	}
	return &Tool{
		Tool: mcp.Tool{
			Name:        AnalyzeTextName,
			Description: "Analyze text content and provide statistics: character, word, and line counts, per-character frequencies, and the most frequent words.",
			Annotations: &mcp.ToolAnnotations{Title: "Analyze Text"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The text content to analyze",
					},
					"top_words": map[string]any{
						"type":        "integer",
						"description": "How many of the most frequent words to return (default 10, 0 for none)",
					},
				},
				"required": []string{"text"},
			},
		},
		Group:   GroupText,
		Execute: executeAnalyzeText(defaultTopWords),
	}
}

func executeAnalyzeText(defaultTopWords int) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		text, err := ReadText(args, "text", true)
		if err != nil {
			return ErrorResult(AnalyzeTextName, err.Error()), nil
		}

		topN := defaultTopWords
		if Has(args, "top_words") {
			topN, err = ReadInt(args, "top_words", true)
			if err != nil {
				return ErrorResult(AnalyzeTextName, err.Error()), nil
			}
		}

		result, err := textstats.AnalyzeTopN(text, topN)
		if err != nil {
			return ErrorResult(AnalyzeTextName, err.Error()), nil
		}
		return JSONResult(result), nil
	}
}
