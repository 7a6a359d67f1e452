package util

import "strings"

// TextMetrics holds the length statistics used for writing feedback and
// for the heuristic evaluator.
type TextMetrics struct {
	WordCount      int `json:"word_count"`
	SentenceCount  int `json:"sentence_count"`
	ParagraphCount int `json:"paragraph_count"`
}

var sentenceNormalizer = strings.NewReplacer("!", ".", "?", ".")

// ComputeTextMetrics counts whitespace-delimited words, sentences and
// blank-line-separated paragraphs. Sentence counting is deliberately naive
// (it miscounts abbreviations and decimals); downstream scoring depends on
// these exact counts, so do not "fix" it.
func ComputeTextMetrics(text string) TextMetrics {
	m := TextMetrics{WordCount: len(strings.Fields(text))}

	for _, s := range strings.Split(sentenceNormalizer.Replace(text), ".") {
		if strings.TrimSpace(s) != "" {
			m.SentenceCount++
		}
	}

	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			m.ParagraphCount++
		}
	}

	return m
}
