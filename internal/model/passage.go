package model

// Question is a multiple-choice comprehension question. Correct is the
// zero-based index into Options.
type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"` // comprehension, inference, vocabulary, analysis, critical_thinking, media_literacy, text_structure
	Skill       string   `json:"skill"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Passage is a reading text with its ordered question bank.
type Passage struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Grade               string     `json:"grade"`
	Type                string     `json:"type"`
	Themes              []string   `json:"themes"`
	RelatedTexts        []string   `json:"related_texts,omitempty"`
	Text                string     `json:"text"`
	Questions           []Question `json:"questions"`
	CurriculumAlignment []string   `json:"curriculum_alignment"`
}

// PassageSummary is the list view shown on the passage selection page.
type PassageSummary struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Grade         string   `json:"grade"`
	QuestionCount int      `json:"question_count"`
	Themes        []string `json:"themes"`
	RelatedTexts  []string `json:"related_texts"`
}

// StudentQuestion is a question as exposed to students, with the answer
// key and explanation stripped.
type StudentQuestion struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Skill    string   `json:"skill"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// StudentPassage is a passage as exposed to students taking the test.
type StudentPassage struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Grade               string            `json:"grade"`
	Type                string            `json:"type"`
	Themes              []string          `json:"themes"`
	RelatedTexts        []string          `json:"related_texts,omitempty"`
	Text                string            `json:"text"`
	Questions           []StudentQuestion `json:"questions"`
	CurriculumAlignment []string          `json:"curriculum_alignment"`
}
