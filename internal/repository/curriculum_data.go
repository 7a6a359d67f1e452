package repository

import "literacy_edu_backend/internal/model"

// achievementLevels are the Ontario Achievement Chart bands used to label
// reading scores.
var achievementLevels = []model.AchievementLevel{
	{
		Level:           "Level 1",
		Range:           "50-59%",
		Description:     "Limited achievement of expectations",
		Characteristics: "Demonstrates limited understanding with significant gaps",
	},
	{
		Level:           "Level 2",
		Range:           "60-69%",
		Description:     "Some achievement of expectations",
		Characteristics: "Demonstrates some understanding with some gaps",
	},
	{
		Level:           "Level 3",
		Range:           "70-79%",
		Description:     "Considerable achievement of expectations",
		Characteristics: "Demonstrates considerable understanding meeting provincial standard",
	},
	{
		Level:           "Level 4",
		Range:           "80-100%",
		Description:     "High achievement of expectations",
		Characteristics: "Demonstrates thorough understanding exceeding provincial standard",
	},
}

// writingRubric is the four-category rubric the writing evaluator
// assesses against. Each category is worth 25%.
var writingRubric = model.WritingRubric{
	Categories: []model.RubricCategory{
		{
			Name:        "Main Message & Focus",
			Weight:      "25%",
			Description: "Is the main point clear from the start?",
			Levels: map[string]string{
				"Level 4 (80-100%)": "Main message is crystal clear from the opening; reader immediately understands the point",
				"Level 3 (70-79%)":  "Main message is clear and stated early in the writing",
				"Level 2 (60-69%)":  "Main message is present but may be buried or unclear",
				"Level 1 (50-59%)":  "Main message is missing or very difficult to identify",
			},
		},
		{
			Name:        "Logical Structure",
			Weight:      "25%",
			Description: "Do supporting points clearly connect to the main message?",
			Levels: map[string]string{
				"Level 4 (80-100%)": "Each paragraph directly answers 'why?' or 'how?' about the main message; points are distinct and complete",
				"Level 3 (70-79%)":  "Supporting points connect to main message with clear logic",
				"Level 2 (60-69%)":  "Some connection between points and main message, but logic may be unclear",
				"Level 1 (50-59%)":  "Points seem disconnected or don't clearly support the main message",
			},
		},
		{
			Name:        "Grouping & Completeness",
			Weight:      "25%",
			Description: "Are ideas grouped well? Do they cover everything important without repeating?",
			Levels: map[string]string{
				"Level 4 (80-100%)": "Ideas are perfectly grouped; no overlap between points; nothing important is missing",
				"Level 3 (70-79%)":  "Ideas are well-grouped with minimal overlap; covers main points",
				"Level 2 (60-69%)":  "Some grouping attempted but ideas may overlap or important points may be missing",
				"Level 1 (50-59%)":  "Ideas are jumbled, repetitive, or major points are missing",
			},
		},
		{
			Name:        "Conventions & Clarity",
			Weight:      "25%",
			Description: "Is the writing clear and error-free?",
			Levels: map[string]string{
				"Level 4 (80-100%)": "Virtually no errors; writing is exceptionally clear",
				"Level 3 (70-79%)":  "Few errors that don't impede understanding",
				"Level 2 (60-69%)":  "Some errors that may impede understanding",
				"Level 1 (50-59%)":  "Frequent errors that significantly impede understanding",
			},
		},
	},
}
