package service

import (
	"fmt"
	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/repository"
	"literacy_edu_backend/internal/util"
	"strings"
)

// ReadingService scores reading-comprehension submissions against the
// passage catalog. Pure: no state is written during scoring.
type ReadingService struct {
	Repo *repository.PassageRepository
}

func NewReadingService(repo *repository.PassageRepository) *ReadingService {
	return &ReadingService{Repo: repo}
}

func (s *ReadingService) ListPassages() []model.PassageSummary {
	return s.Repo.List()
}

// GetPassage returns the student view of a passage, with answer keys and
// explanations stripped.
func (s *ReadingService) GetPassage(id string) (model.StudentPassage, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return model.StudentPassage{}, err
	}

	questions := make([]model.StudentQuestion, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = model.StudentQuestion{
			ID:       q.ID,
			Type:     q.Type,
			Skill:    q.Skill,
			Question: q.Question,
			Options:  q.Options,
		}
	}

	return model.StudentPassage{
		ID:                  p.ID,
		Title:               p.Title,
		Grade:               p.Grade,
		Type:                p.Type,
		Themes:              p.Themes,
		RelatedTexts:        p.RelatedTexts,
		Text:                p.Text,
		Questions:           questions,
		CurriculumAlignment: p.CurriculumAlignment,
	}, nil
}

// Score evaluates a submission. answers maps question id to the selected
// option index as decoded from JSON; missing, null, out-of-range or
// non-numeric entries count as incorrect rather than failing.
func (s *ReadingService) Score(passageID string, answers map[string]interface{}) (*model.ReadingResult, error) {
	passage, err := s.Repo.FindByID(passageID)
	if err != nil {
		return nil, err
	}

	result := &model.ReadingResult{
		PassageID:          passageID,
		PassageTitle:       passage.Title,
		TotalQuestions:     len(passage.Questions),
		QuestionResults:    make([]model.QuestionResult, 0, len(passage.Questions)),
		SkillBreakdown:     map[string]model.SkillStat{},
		CurriculumFeedback: []model.SkillFeedback{},
	}

	skillCorrect := map[string]int{}
	skillTotal := map[string]int{}
	var skillOrder []string

	for _, q := range passage.Questions {
		if _, seen := skillTotal[q.Skill]; !seen {
			skillOrder = append(skillOrder, q.Skill)
		}
		skillTotal[q.Skill]++

		studentAnswer := answers[q.ID]
		idx, ok := util.AnswerIndex(studentAnswer)
		isCorrect := ok && idx == q.Correct

		if isCorrect {
			result.CorrectCount++
			skillCorrect[q.Skill]++
		}

		result.QuestionResults = append(result.QuestionResults, model.QuestionResult{
			QuestionID:    q.ID,
			Question:      q.Question,
			Skill:         q.Skill,
			Correct:       isCorrect,
			StudentAnswer: studentAnswer,
			CorrectAnswer: q.Correct,
			Explanation:   q.Explanation,
		})
	}

	result.ScorePercentage = util.RoundPercent(result.CorrectCount, result.TotalQuestions)
	result.AchievementLevel = achievementLevelFor(result.ScorePercentage)

	for _, skill := range skillOrder {
		result.SkillBreakdown[skill] = model.SkillStat{
			Correct:    skillCorrect[skill],
			Total:      skillTotal[skill],
			Percentage: util.RoundPercent(skillCorrect[skill], skillTotal[skill]),
		}
	}

	result.CurriculumFeedback = generateFeedback(skillOrder, result.SkillBreakdown)

	return result, nil
}

// achievementLevelFor maps a percentage to an Ontario achievement level.
// Bands are inclusive on the lower bound.
func achievementLevelFor(score int) string {
	switch {
	case score >= 80:
		return "Level 4"
	case score >= 70:
		return "Level 3"
	case score >= 60:
		return "Level 2"
	default:
		return "Level 1"
	}
}

// generateFeedback emits a remark per skill outside the [70,80) band:
// below 70 needs improvement, 80 and above is a strength. The band in
// between stays silent.
func generateFeedback(order []string, breakdown map[string]model.SkillStat) []model.SkillFeedback {
	feedback := []model.SkillFeedback{}

	for _, skill := range order {
		stat := breakdown[skill]
		switch {
		case stat.Percentage < 70:
			feedback = append(feedback, model.SkillFeedback{
				Skill:   skill,
				Status:  "needs_improvement",
				Message: fmt.Sprintf("Consider practicing %s. Review strategies for this skill area.", strings.ToLower(skill)),
			})
		case stat.Percentage >= 80:
			feedback = append(feedback, model.SkillFeedback{
				Skill:   skill,
				Status:  "strength",
				Message: fmt.Sprintf("Strong performance in %s!", strings.ToLower(skill)),
			})
		}
	}

	return feedback
}
