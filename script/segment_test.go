package script

import (
	"reflect"
	"testing"
)

func TestSegmentsPerLine(t *testing.T) {
	text := "Hello world.\n# comment\nGoodbye now."
	segs, err := Segments(text, 1, LineCount(text))
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		{Sample: 1, Text: "Hello world."},
		{Sample: 2, Text: "Goodbye now."},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("Segments = %v, want %v", segs, want)
	}
}

func TestSegmentsRangeFilter(t *testing.T) {
	text := "one\ntwo\nthree\nfour"
	segs, err := Segments(text, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		{Sample: 2, Text: "two"},
		{Sample: 3, Text: "three"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("Segments = %v, want %v", segs, want)
	}
}

func TestSegmentsSentenceFallback(t *testing.T) {
	// Lines 2-3 hold no content, so segmentation falls back to sentences of
	// the full text, numbered after the last full-text sample number.
	text := "One. Two! Three?\n# only a comment\n   "
	segs, err := Segments(text, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		{Sample: 2, Text: "One."},
		{Sample: 3, Text: "Two!"},
		{Sample: 4, Text: "Three?"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("Segments = %v, want %v", segs, want)
	}
}

func TestSegmentsEmptyText(t *testing.T) {
	segs, err := Segments("# nothing\n# at all", 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 0 {
		t.Errorf("expected no segments, got %v", segs)
	}
}

func TestSegmentsOrdering(t *testing.T) {
	text := "a\nb\nc\nd\ne"
	segs, err := Segments(text, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Sample <= segs[i-1].Sample {
			t.Fatalf("segments out of order: %v", segs)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple",
			input: "One. Two! Three?",
			want:  []string{"One.", "Two!", "Three?"},
		},
		{
			name:  "no terminal punctuation",
			input: "just one fragment",
			want:  []string{"just one fragment"},
		},
		{
			name:  "newlines as separators",
			input: "First.\nSecond.",
			want:  []string{"First.", "Second."},
		},
		{
			name:  "decimal point not a boundary",
			input: "Pi is 3.14 roughly. Yes.",
			want:  []string{"Pi is 3.14 roughly.", "Yes."},
		},
		{
			name:  "multiple spaces",
			input: "A.   B.",
			want:  []string{"A.", "B."},
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
		{
			name:  "trailing whitespace",
			input: "Done. ",
			want:  []string{"Done."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
