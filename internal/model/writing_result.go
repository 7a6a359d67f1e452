package model

import "literacy_edu_backend/internal/util"

// CategoryScore is one rubric category: a 1-4 level plus one strength and
// one improvement sentence.
type CategoryScore struct {
	Level       int    `json:"level"`
	Strength    string `json:"strength"`
	Improvement string `json:"improvement"`
}

// EvaluationCategories holds the four fixed rubric categories, each worth
// 25% of the overall assessment.
type EvaluationCategories struct {
	MainMessage      CategoryScore `json:"main_message"`
	LogicalStructure CategoryScore `json:"logical_structure"`
	Grouping         CategoryScore `json:"grouping"`
	Conventions      CategoryScore `json:"conventions"`
}

// WritingEvaluation is the four-category rubric payload, produced either
// by the remote model or by the heuristic evaluator. AIEvaluated records
// which path produced it.
type WritingEvaluation struct {
	OverallLevel      int                  `json:"overall_level"`
	OverallPercentage int                  `json:"overall_percentage"`
	Categories        EvaluationCategories `json:"categories"`
	OverallFeedback   string               `json:"overall_feedback"`
	TopPriority       string               `json:"top_priority"`
	AIEvaluated       bool                 `json:"ai_evaluated"`
}

// WritingMetrics extends the raw text metrics with the prompt's word
// bounds for display.
type WritingMetrics struct {
	util.TextMetrics
	WordMinimum int `json:"word_minimum"`
	WordMaximum int `json:"word_maximum"`
}

// WritingResult is the full outcome of evaluating a writing submission.
// AIPowered is true only when the remote model call succeeded.
type WritingResult struct {
	PromptID    string            `json:"prompt_id"`
	PromptTitle string            `json:"prompt_title"`
	PromptType  string            `json:"prompt_type"`
	TextMetrics WritingMetrics    `json:"text_metrics"`
	Evaluation  WritingEvaluation `json:"evaluation"`
	AIPowered   bool              `json:"ai_powered"`
}
