package textstats

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FrequencyTable is a key -> count mapping that remembers first-seen
// insertion order. It marshals to a JSON object whose keys appear in that
// order, so frequency output is reproducible across runs.
type FrequencyTable struct {
	keys   []string
	counts map[string]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments the count for key, appending it on first sight.
func (t *FrequencyTable) Add(key string) {
	t.AddN(key, 1)
}

// AddN increments the count for key by n, appending it on first sight.
func (t *FrequencyTable) AddN(key string, n int) {
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.counts[key] += n
}

// Count returns the count for key, zero if absent.
func (t *FrequencyTable) Count(key string) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int {
	return len(t.keys)
}

// Keys returns the keys in first-seen order.
func (t *FrequencyTable) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

// MarshalJSON emits a JSON object with keys in insertion order. An empty
// table marshals as {} rather than null.
func (t *FrequencyTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(t.counts[key]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
