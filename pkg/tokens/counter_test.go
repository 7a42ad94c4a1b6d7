package tokens

import "testing"

func TestCountDefaultEncoding(t *testing.T) {
	counter := NewCounter()
	count, used, err := counter.Count("hello world", "")
	if err != nil {
		t.Skipf("tokenizer data unavailable: %v", err)
	}
	if used != DefaultEncoding {
		t.Fatalf("unexpected encoding: %q", used)
	}
	if count <= 0 {
		t.Fatalf("expected positive token count, got %d", count)
	}
	if empty, _, err := counter.Count("", ""); err != nil || empty != 0 {
		t.Fatalf("empty text should count zero tokens, got %d (err %v)", empty, err)
	}
}

func TestCountUnknownEncodingFallsBack(t *testing.T) {
	counter := NewCounter()
	count, used, err := counter.Count("hello", "no-such-encoding")
	if err != nil {
		t.Skipf("tokenizer data unavailable: %v", err)
	}
	if used != DefaultEncoding {
		t.Fatalf("expected fallback to %q, got %q", DefaultEncoding, used)
	}
	if count <= 0 {
		t.Fatalf("expected positive token count, got %d", count)
	}
}

func TestEncoderCacheReuse(t *testing.T) {
	counter := NewCounter()
	if _, _, err := counter.Count("warm the cache", ""); err != nil {
		t.Skipf("tokenizer data unavailable: %v", err)
	}
	counter.mu.RLock()
	cached := len(counter.encoders)
	counter.mu.RUnlock()
	if cached != 1 {
		t.Fatalf("expected one cached encoder, got %d", cached)
	}
}
