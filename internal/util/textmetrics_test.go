package util

import "testing"

func TestComputeTextMetrics(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		words      int
		sentences  int
		paragraphs int
	}{
		{
			name:       "mixed terminators",
			text:       "Hello world. This is a test! Another sentence? Done.",
			words:      9,
			sentences:  4,
			paragraphs: 1,
		},
		{
			name:       "empty",
			text:       "",
			words:      0,
			sentences:  0,
			paragraphs: 0,
		},
		{
			name:       "whitespace only",
			text:       "   \n\n  \t",
			words:      0,
			sentences:  0,
			paragraphs: 0,
		},
		{
			name:       "blank line paragraphs",
			text:       "First point here.\n\nSecond point here.\n\nThird point here.",
			words:      9,
			sentences:  3,
			paragraphs: 3,
		},
		{
			name:       "single newline is not a paragraph break",
			text:       "First line.\nSecond line.",
			words:      4,
			sentences:  2,
			paragraphs: 1,
		},
		{
			name:       "no terminal punctuation",
			text:       "no punctuation at all",
			words:      4,
			sentences:  1,
			paragraphs: 1,
		},
		{
			name:       "trailing punctuation does not add a sentence",
			text:       "One. Two. Three...",
			words:      3,
			sentences:  3,
			paragraphs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeTextMetrics(tt.text)
			if m.WordCount != tt.words {
				t.Errorf("WordCount = %d, want %d", m.WordCount, tt.words)
			}
			if m.SentenceCount != tt.sentences {
				t.Errorf("SentenceCount = %d, want %d", m.SentenceCount, tt.sentences)
			}
			if m.ParagraphCount != tt.paragraphs {
				t.Errorf("ParagraphCount = %d, want %d", m.ParagraphCount, tt.paragraphs)
			}
		})
	}
}
