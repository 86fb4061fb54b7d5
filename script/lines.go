// Package script classifies and segments narration scripts. A script is
// plain text where blank lines and `#` comments are ignored and every
// remaining line is one sample to synthesize.
package script

import (
	"fmt"
	"strings"
)

// Line is one physical line of the input text after classification.
type Line struct {
	// Number is the 1-based physical line number.
	Number int
	// Sample is the 1-based sample number assigned to content lines,
	// counted across the whole text. Zero for blank or comment-only lines.
	Sample int
	// Content is the line with its trailing comment stripped and
	// whitespace trimmed. Empty when the line carries no content.
	Content string
	// InRange reports whether the line falls inside the requested range.
	InRange bool
}

// Classify splits text into physical lines and assigns sample numbers.
// Sample numbers span the entire text; the range only marks which lines are
// selected. startLine and lastLine are 1-based and inclusive.
func Classify(text string, startLine, lastLine int) ([]Line, error) {
	if startLine < 1 {
		return nil, fmt.Errorf("start line must be at least 1, got %d", startLine)
	}
	if lastLine < startLine {
		return nil, fmt.Errorf("last line %d is before start line %d", lastLine, startLine)
	}

	raw := strings.Split(strings.TrimSpace(text), "\n")
	lines := make([]Line, 0, len(raw))
	sample := 0
	for i, l := range raw {
		number := i + 1
		content := strings.TrimSpace(stripComment(l))
		line := Line{
			Number:  number,
			Content: content,
			InRange: number >= startLine && number <= lastLine,
		}
		if content != "" {
			sample++
			line.Sample = sample
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// LineCount reports the number of physical lines Classify would see.
func LineCount(text string) int {
	return len(strings.Split(strings.TrimSpace(text), "\n"))
}

// stripComment drops everything from the first '#' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
