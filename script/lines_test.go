package script

import "testing"

func TestClassifyBasic(t *testing.T) {
	text := "Hello world.\n# comment\nGoodbye now."
	lines, err := Classify(text, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if lines[0].Sample != 1 || lines[0].Content != "Hello world." {
		t.Errorf("line 1 = %+v, want sample 1 %q", lines[0], "Hello world.")
	}
	if lines[1].Sample != 0 || lines[1].Content != "" {
		t.Errorf("comment line should carry no sample, got %+v", lines[1])
	}
	if lines[2].Sample != 2 || lines[2].Content != "Goodbye now." {
		t.Errorf("line 3 = %+v, want sample 2 %q", lines[2], "Goodbye now.")
	}
}

func TestClassifySampleNumbersIgnoreRange(t *testing.T) {
	// 5 content lines spread over 10 physical lines; the range filter must
	// not reset the numbering.
	text := "one\n\ntwo\n\nthree\n\n# note\nfour\n\nfive"
	lines, err := Classify(text, 6, 10)
	if err != nil {
		t.Fatal(err)
	}

	var inRange []Line
	for _, l := range lines {
		if l.Sample > 0 && l.InRange {
			inRange = append(inRange, l)
		}
	}
	if len(inRange) != 2 {
		t.Fatalf("expected 2 in-range content lines, got %d", len(inRange))
	}
	if inRange[0].Number != 8 || inRange[0].Sample != 4 {
		t.Errorf("first in-range line = %+v, want line 8 sample 4", inRange[0])
	}
	if inRange[1].Number != 10 || inRange[1].Sample != 5 {
		t.Errorf("second in-range line = %+v, want line 10 sample 5", inRange[1])
	}
}

func TestClassifySampleNumbersStrictlyIncreasing(t *testing.T) {
	text := "a\n# x\nb\n\nc # trailing\nd"
	lines, err := Classify(text, 1, LineCount(text))
	if err != nil {
		t.Fatal(err)
	}
	prev := 0
	for _, l := range lines {
		if l.Sample == 0 {
			continue
		}
		if l.Sample != prev+1 {
			t.Errorf("line %d: sample %d after %d, want dense increasing", l.Number, l.Sample, prev)
		}
		prev = l.Sample
	}
	if prev != 4 {
		t.Errorf("expected 4 content lines, got %d", prev)
	}
}

func TestClassifyTrailingComment(t *testing.T) {
	lines, err := Classify("speak this # but not this", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Content != "speak this" {
		t.Errorf("Content = %q, want %q", lines[0].Content, "speak this")
	}
}

func TestClassifyInvalidRange(t *testing.T) {
	if _, err := Classify("x", 0, 1); err == nil {
		t.Error("expected error for start line 0")
	}
	if _, err := Classify("x", 5, 3); err == nil {
		t.Error("expected error for last line before start line")
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"one line", 1},
		{"a\nb\nc", 3},
		{"  \n a \n b \n  ", 2}, // outer whitespace trimmed first
	}
	for _, tt := range tests {
		if got := LineCount(tt.text); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
