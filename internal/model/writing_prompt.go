package model

// ThinkFirstStep is one step of the structured planning framework shown
// to students before they write.
type ThinkFirstStep struct {
	Name        string `json:"name"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// ThinkFirstGuide adapts the framework to a specific prompt.
type ThinkFirstGuide struct {
	Situation  string   `json:"situation"`
	Challenge  string   `json:"challenge"`
	Focus      string   `json:"focus"`
	Support    []string `json:"support"`
	LogicCheck string   `json:"logic_check"`
}

// WritingPrompt is a writing assignment with word-count bounds and
// planning metadata. The bounds feed both student guidance and the
// heuristic evaluator.
type WritingPrompt struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Grade               string          `json:"grade"`
	Type                string          `json:"type"` // Narrative Writing, Opinion/Persuasive Writing, Informational/Explanatory Writing
	Prompt              string          `json:"prompt"`
	ThinkFirstGuide     ThinkFirstGuide `json:"think_first_guide"`
	PlanningQuestions   []string        `json:"planning_questions"`
	StructureTips       []string        `json:"structure_tips"`
	SuccessCriteria     []string        `json:"success_criteria"`
	CurriculumAlignment []string        `json:"curriculum_alignment"`
	WordMinimum         int             `json:"word_minimum"`
	WordMaximum         int             `json:"word_maximum"`
}

// PromptSummary is the list view for prompt selection.
type PromptSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Grade       string `json:"grade"`
	WordMinimum int    `json:"word_minimum"`
	WordMaximum int    `json:"word_maximum"`
}

// PromptDetail is a prompt plus the planning framework, as served to a
// student starting the assignment.
type PromptDetail struct {
	WritingPrompt
	ThinkFirstFramework []ThinkFirstStep `json:"think_first_framework"`
}
