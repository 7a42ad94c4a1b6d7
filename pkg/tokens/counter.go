// Package tokens counts text tokens using tiktoken encodings.
package tokens

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used when a caller does not name an encoding.
const DefaultEncoding = "cl100k_base"

// Counter caches tiktoken encoders by encoding name.
type Counter struct {
	mu       sync.RWMutex
	encoders map[string]*tiktoken.Tiktoken
}

// NewCounter creates a Counter with an empty encoder cache.
func NewCounter() *Counter {
	return &Counter{encoders: make(map[string]*tiktoken.Tiktoken)}
}

// Count returns the number of tokens in text under the named encoding,
// along with the encoding actually used. Unknown encodings fall back to
// DefaultEncoding.
func (c *Counter) Count(text, encoding string) (int, string, error) {
	enc, used, err := c.encoder(encoding)
	if err != nil {
		return 0, "", err
	}
	return len(enc.Encode(text, nil, nil)), used, nil
}

func (c *Counter) encoder(encoding string) (*tiktoken.Tiktoken, string, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	c.mu.RLock()
	if enc, ok := c.encoders[encoding]; ok {
		c.mu.RUnlock()
		return enc, encoding, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if enc, ok := c.encoders[encoding]; ok {
		return enc, encoding, nil
	}

	used := encoding
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil && encoding != DefaultEncoding {
		used = DefaultEncoding
		enc, err = tiktoken.GetEncoding(DefaultEncoding)
	}
	if err != nil {
		return nil, "", fmt.Errorf("load encoding %q: %w", encoding, err)
	}

	c.encoders[encoding] = enc
	return enc, used, nil
}
