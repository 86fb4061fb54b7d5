package script

import (
	"strings"
	"unicode"
)

// Segment is one unit of text destined for a single synthesis call.
type Segment struct {
	Sample int
	Text   string
}

// Segments returns one segment per in-range content line. When the range
// holds no content lines it falls back to sentence-splitting the full
// non-comment text, numbering the sentences after the last full-text sample
// number. That numbering is a continuation marker only; sentences have no
// line correspondence.
func Segments(text string, startLine, lastLine int) ([]Segment, error) {
	lines, err := Classify(text, startLine, lastLine)
	if err != nil {
		return nil, err
	}

	var segments []Segment
	lastSample := 0
	for _, l := range lines {
		if l.Sample > 0 {
			lastSample = l.Sample
		}
		if l.InRange && l.Content != "" {
			segments = append(segments, Segment{Sample: l.Sample, Text: l.Content})
		}
	}
	if len(segments) > 0 {
		return segments, nil
	}

	var content []string
	for _, l := range lines {
		if l.Content != "" {
			content = append(content, l.Content)
		}
	}
	for i, s := range SplitSentences(strings.Join(content, "\n")) {
		segments = append(segments, Segment{Sample: lastSample + i + 1, Text: s})
	}
	return segments, nil
}

// SplitSentences splits text at runs of whitespace that immediately follow a
// '.', '!' or '?'. The punctuation stays attached to the preceding sentence;
// empty sentences are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(strings.TrimSpace(text))
	start := 0
	for i := 0; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) || i == 0 || !isTerminal(runes[i-1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start:i])); s != "" {
			sentences = append(sentences, s)
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
