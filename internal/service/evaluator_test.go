package service

import (
	"context"
	"strings"
	"testing"

	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/util"
)

var heuristicPrompt = model.WritingPrompt{
	ID:          "narrative_1",
	Title:       "A Moment That Changed Everything",
	Type:        "Narrative Writing",
	WordMinimum: 250,
	WordMaximum: 500,
}

func TestHeuristicLevels(t *testing.T) {
	tests := []struct {
		name           string
		metrics        util.TextMetrics
		wantLevel      int
		wantPercentage int
	}{
		{
			name:           "nothing satisfied",
			metrics:        util.TextMetrics{WordCount: 100, SentenceCount: 3, ParagraphCount: 1},
			wantLevel:      2,
			wantPercentage: 65,
		},
		{
			// 2.5 rounds half to even, back down to 2
			name:           "length only",
			metrics:        util.TextMetrics{WordCount: 300, SentenceCount: 4, ParagraphCount: 2},
			wantLevel:      2,
			wantPercentage: 65,
		},
		{
			name:           "length and paragraphs",
			metrics:        util.TextMetrics{WordCount: 300, SentenceCount: 4, ParagraphCount: 3},
			wantLevel:      3,
			wantPercentage: 74,
		},
		{
			// 3.5 rounds half to even, up to 4
			name:           "all satisfied",
			metrics:        util.TextMetrics{WordCount: 300, SentenceCount: 6, ParagraphCount: 3},
			wantLevel:      4,
			wantPercentage: 85,
		},
		{
			name:           "too long",
			metrics:        util.TextMetrics{WordCount: 600, SentenceCount: 8, ParagraphCount: 4},
			wantLevel:      3,
			wantPercentage: 74,
		},
	}

	backend := NewHeuristicBackend()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := backend.Evaluate(context.Background(), heuristicPrompt, "", tt.metrics)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if eval.OverallLevel != tt.wantLevel {
				t.Errorf("OverallLevel = %d, want %d", eval.OverallLevel, tt.wantLevel)
			}
			if eval.OverallPercentage != tt.wantPercentage {
				t.Errorf("OverallPercentage = %d, want %d", eval.OverallPercentage, tt.wantPercentage)
			}
			if eval.AIEvaluated {
				t.Error("heuristic result flagged as AI evaluated")
			}
		})
	}
}

func TestHeuristicShortUnstructuredSubmission(t *testing.T) {
	backend := NewHeuristicBackend()
	prompt := model.WritingPrompt{ID: "p", Title: "P", Type: "Narrative Writing", WordMinimum: 200, WordMaximum: 400}

	eval, err := backend.Evaluate(context.Background(), prompt, "",
		util.TextMetrics{WordCount: 180, SentenceCount: 4, ParagraphCount: 2})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if eval.OverallLevel != 2 || eval.OverallPercentage != 65 {
		t.Errorf("overall = %d/%d, want 2/65", eval.OverallLevel, eval.OverallPercentage)
	}
	if eval.Categories.LogicalStructure.Level != 1 {
		t.Errorf("structure level = %d, want 1", eval.Categories.LogicalStructure.Level)
	}
}

func TestHeuristicStructurePenalty(t *testing.T) {
	backend := NewHeuristicBackend()

	eval, err := backend.Evaluate(context.Background(), heuristicPrompt, "",
		util.TextMetrics{WordCount: 300, SentenceCount: 6, ParagraphCount: 1})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// Length and variety satisfied: overall 3, structure knocked down to 2.
	if eval.OverallLevel != 3 {
		t.Fatalf("OverallLevel = %d, want 3", eval.OverallLevel)
	}
	structure := eval.Categories.LogicalStructure
	if structure.Level != 2 {
		t.Errorf("structure level = %d, want 2", structure.Level)
	}
	if structure.Strength != "You've started organizing your ideas." {
		t.Errorf("structure strength = %q", structure.Strength)
	}
	if !strings.Contains(eval.OverallFeedback, "300 words across 1 paragraph.") {
		t.Errorf("feedback = %q, want singular paragraph", eval.OverallFeedback)
	}
}

func TestHeuristicLengthRemarks(t *testing.T) {
	backend := NewHeuristicBackend()

	short, _ := backend.Evaluate(context.Background(), heuristicPrompt, "",
		util.TextMetrics{WordCount: 100, SentenceCount: 3, ParagraphCount: 3})
	if !strings.Contains(short.OverallFeedback, "expand your writing") {
		t.Errorf("short feedback = %q", short.OverallFeedback)
	}

	long, _ := backend.Evaluate(context.Background(), heuristicPrompt, "",
		util.TextMetrics{WordCount: 700, SentenceCount: 8, ParagraphCount: 3})
	if !strings.Contains(long.OverallFeedback, "tighten your writing") {
		t.Errorf("long feedback = %q", long.OverallFeedback)
	}

	good, _ := backend.Evaluate(context.Background(), heuristicPrompt, "",
		util.TextMetrics{WordCount: 300, SentenceCount: 8, ParagraphCount: 3})
	if !strings.Contains(good.OverallFeedback, "Good job meeting the word count!") {
		t.Errorf("good feedback = %q", good.OverallFeedback)
	}
}

const validModelReply = `{
	"overall_level": 3,
	"overall_percentage": 76,
	"categories": {
		"main_message": {"level": 3, "strength": "Clear opening.", "improvement": "State your thesis sooner."},
		"logical_structure": {"level": 3, "strength": "Good flow.", "improvement": "Link paragraphs back to your point."},
		"grouping": {"level": 4, "strength": "Distinct points.", "improvement": "Add one more example."},
		"conventions": {"level": 2, "strength": "Readable.", "improvement": "Fix comma splices."}
	},
	"overall_feedback": "Solid effort with a clear argument.",
	"top_priority": "Work on sentence punctuation."
}`

func TestParseEvaluationResponse(t *testing.T) {
	t.Run("bare json", func(t *testing.T) {
		eval := parseEvaluationResponse(validModelReply)
		if eval.OverallLevel != 3 || eval.OverallPercentage != 76 {
			t.Errorf("overall = %d/%d", eval.OverallLevel, eval.OverallPercentage)
		}
		if eval.Categories.Grouping.Level != 4 {
			t.Errorf("grouping level = %d", eval.Categories.Grouping.Level)
		}
		if !eval.AIEvaluated {
			t.Error("parsed result not flagged as AI evaluated")
		}
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		wrapped := "Here is my evaluation:\n\n" + validModelReply + "\n\nHope this helps!"
		eval := parseEvaluationResponse(wrapped)
		if eval.OverallPercentage != 76 {
			t.Errorf("OverallPercentage = %d, want 76", eval.OverallPercentage)
		}
	})

	t.Run("no json at all", func(t *testing.T) {
		eval := parseEvaluationResponse("The student did well overall.")
		if eval != DefaultEvaluation() {
			t.Error("want DefaultEvaluation for prose-only reply")
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		bad := strings.Replace(validModelReply, `"overall_level": 3`, `"overall_level": 9`, 1)
		eval := parseEvaluationResponse(bad)
		if eval != DefaultEvaluation() {
			t.Error("want DefaultEvaluation for out-of-range level")
		}
	})

	t.Run("missing category", func(t *testing.T) {
		bad := strings.Replace(validModelReply, `"conventions"`, `"other"`, 1)
		eval := parseEvaluationResponse(bad)
		if eval != DefaultEvaluation() {
			t.Error("want DefaultEvaluation when a rubric category is missing")
		}
	})

	t.Run("truncated json", func(t *testing.T) {
		eval := parseEvaluationResponse(validModelReply[:40])
		if eval != DefaultEvaluation() {
			t.Error("want DefaultEvaluation for truncated reply")
		}
	})
}

func TestDefaultEvaluationIsComplete(t *testing.T) {
	eval := DefaultEvaluation()
	if !eval.AIEvaluated {
		t.Error("default evaluation must count as AI evaluated")
	}
	for name, c := range map[string]model.CategoryScore{
		"main_message":      eval.Categories.MainMessage,
		"logical_structure": eval.Categories.LogicalStructure,
		"grouping":          eval.Categories.Grouping,
		"conventions":       eval.Categories.Conventions,
	} {
		if c.Level < 1 || c.Level > 4 || c.Strength == "" || c.Improvement == "" {
			t.Errorf("category %s incomplete: %+v", name, c)
		}
	}
}
