package model

// AchievementLevel describes one band of the Ontario Achievement Chart.
type AchievementLevel struct {
	Level           string `json:"level"`
	Range           string `json:"range"`
	Description     string `json:"description"`
	Characteristics string `json:"characteristics"`
}

// RubricCategory is one of the four writing rubric criteria with its
// level descriptors.
type RubricCategory struct {
	Name        string            `json:"name"`
	Weight      string            `json:"weight"`
	Description string            `json:"description"`
	Levels      map[string]string `json:"levels"`
}

// WritingRubric is the full four-category writing rubric.
type WritingRubric struct {
	Categories []RubricCategory `json:"categories"`
}
