// Package textstats computes aggregate statistics, character frequencies,
// and top-word tables for arbitrary text. Analysis is a pure function of
// its input: no I/O, no shared state, safe for any number of concurrent
// callers.
package textstats

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultTopWords is the top-word table size used by Analyze.
const DefaultTopWords = 10

// ErrNegativeTopN is returned when a caller asks for a negative number of
// top words.
var ErrNegativeTopN = errors.New("top word limit must not be negative")

// wordPattern matches maximal runs of word characters (letters, digits,
// underscore), Unicode-aware.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Statistics holds the aggregate counts for a block of text.
type Statistics struct {
	CharacterCount int `json:"character_count"`
	WordCount      int `json:"word_count"`
	LineCount      int `json:"line_count"`
}

// Result is the full analysis of one block of text.
type Result struct {
	Statistics         Statistics      `json:"statistics"`
	CharacterFrequency *FrequencyTable `json:"character_frequency"`
	TopWords           *FrequencyTable `json:"top_words"`
}

// Analyze computes statistics for text with the default top-word limit.
func Analyze(text string) (*Result, error) {
	return AnalyzeTopN(text, DefaultTopWords)
}

// AnalyzeTopN computes statistics for text, keeping the topN most frequent
// word tokens. topN of zero yields an empty top-word table; a negative
// topN is an error. Any text value is valid input, including the empty
// string.
func AnalyzeTopN(text string, topN int) (*Result, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTopN, topN)
	}

	lowered := strings.ToLower(text)

	charFreq := NewFrequencyTable()
	for _, r := range lowered {
		charFreq.Add(string(r))
	}

	return &Result{
		Statistics: Statistics{
			CharacterCount: utf8.RuneCountInString(text),
			WordCount:      len(strings.Fields(text)),
			LineCount:      countLines(text),
		},
		CharacterFrequency: charFreq,
		TopWords:           topWords(lowered, topN),
	}, nil
}

// countLines counts line segments split on \n, \r\n, and \r. A trailing
// empty segment after a final newline is not counted: "a\nb\n" and "a\nb"
// are both two lines, "" is zero.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	count := strings.Count(normalized, "\n")
	if !strings.HasSuffix(normalized, "\n") {
		count++
	}
	return count
}

// topWords extracts word tokens from the lower-cased text, counts them,
// and keeps the topN most frequent. Ties are broken by first occurrence
// in the token stream; the returned table preserves descending-count
// order.
func topWords(lowered string, topN int) *FrequencyTable {
	top := NewFrequencyTable()
	if topN == 0 {
		return top
	}

	counts := NewFrequencyTable()
	for _, word := range wordPattern.FindAllString(lowered, -1) {
		counts.Add(word)
	}

	ranked := counts.Keys()
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts.Count(ranked[i]) > counts.Count(ranked[j])
	})
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	for _, word := range ranked {
		top.AddN(word, counts.Count(word))
	}
	return top
}
