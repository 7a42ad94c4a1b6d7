package server

import (
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/file-analysis-mcp/pkg/tools"
)

func TestDecodeArgumentsRawJSON(t *testing.T) {
	args, err := decodeArguments(json.RawMessage(`{"text":"hi","top_words":3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if args["text"] != "hi" {
		t.Fatalf("unexpected text: %v", args["text"])
	}
	if args["top_words"] != float64(3) {
		t.Fatalf("unexpected top_words: %v", args["top_words"])
	}
}

func TestDecodeArgumentsMap(t *testing.T) {
	in := map[string]any{"directory": "."}
	args, err := decodeArguments(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if args["directory"] != "." {
		t.Fatalf("unexpected directory: %v", args["directory"])
	}
}

func TestDecodeArgumentsEmpty(t *testing.T) {
	for _, raw := range []any{nil, json.RawMessage(nil), json.RawMessage(`null`), []byte(nil)} {
		args, err := decodeArguments(raw)
		if err != nil {
			t.Fatalf("decode %v: %v", raw, err)
		}
		if args == nil || len(args) != 0 {
			t.Fatalf("expected empty args, got %v", args)
		}
	}
}

func TestDecodeArgumentsRejectsNonObject(t *testing.T) {
	if _, err := decodeArguments(json.RawMessage(`[1,2]`)); err == nil {
		t.Fatal("expected error for JSON array arguments")
	}
}

func TestToCallToolResultSuccess(t *testing.T) {
	out := toCallToolResult(tools.TextResult("all good"))
	if out.IsError {
		t.Fatal("unexpected error flag")
	}
	if len(out.Content) != 1 {
		t.Fatalf("unexpected content length: %d", len(out.Content))
	}
	text, ok := out.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type: %T", out.Content[0])
	}
	if text.Text != "all good" {
		t.Fatalf("unexpected text: %q", text.Text)
	}
}

func TestToCallToolResultError(t *testing.T) {
	out := toCallToolResult(tools.ErrorResult("read_file", "file not found at /x"))
	if !out.IsError {
		t.Fatal("expected error flag")
	}
	text, ok := out.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type: %T", out.Content[0])
	}
	if text.Text != "file not found at /x" {
		t.Fatalf("unexpected text: %q", text.Text)
	}
}
