package model

// QuestionResult reports one question after scoring, including the
// explanation shown to the student.
type QuestionResult struct {
	QuestionID    string      `json:"question_id"`
	Question      string      `json:"question"`
	Skill         string      `json:"skill"`
	Correct       bool        `json:"correct"`
	StudentAnswer interface{} `json:"student_answer"`
	CorrectAnswer int         `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
}

// SkillStat aggregates correctness for one skill tag.
type SkillStat struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// SkillFeedback is a qualitative remark attached to a skill. Status is
// either "needs_improvement" or "strength"; skills scoring in [70,80)
// produce no entry.
type SkillFeedback struct {
	Skill   string `json:"skill"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReadingResult is the full outcome of scoring a reading submission.
type ReadingResult struct {
	PassageID          string               `json:"passage_id"`
	PassageTitle       string               `json:"passage_title"`
	TotalQuestions     int                  `json:"total_questions"`
	CorrectCount       int                  `json:"correct_count"`
	ScorePercentage    int                  `json:"score_percentage"`
	AchievementLevel   string               `json:"achievement_level"`
	QuestionResults    []QuestionResult     `json:"question_results"`
	SkillBreakdown     map[string]SkillStat `json:"skill_breakdown"`
	CurriculumFeedback []SkillFeedback      `json:"curriculum_feedback"`
}
