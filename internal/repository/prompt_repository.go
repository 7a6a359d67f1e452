package repository

import (
	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/util"
	"sort"
)

// PromptRepository serves the writing catalog plus the curriculum
// metadata surrounding it. Read-only after construction.
type PromptRepository struct {
	prompts map[string]model.WritingPrompt
	order   []string
}

func NewPromptRepository() *PromptRepository {
	return newPromptRepository(writingCatalog())
}

// NewPromptRepositoryWith builds a repository over a fixture catalog.
func NewPromptRepositoryWith(prompts []model.WritingPrompt) *PromptRepository {
	return newPromptRepository(prompts)
}

func newPromptRepository(prompts []model.WritingPrompt) *PromptRepository {
	r := &PromptRepository{prompts: make(map[string]model.WritingPrompt, len(prompts))}
	for _, p := range prompts {
		r.prompts[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	sort.Strings(r.order)
	return r
}

func (r *PromptRepository) FindByID(id string) (model.WritingPrompt, error) {
	p, ok := r.prompts[id]
	if !ok {
		return model.WritingPrompt{}, util.ErrPromptNotFound
	}
	return p, nil
}

func (r *PromptRepository) List() []model.PromptSummary {
	out := make([]model.PromptSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.prompts[id]
		out = append(out, model.PromptSummary{
			ID:          p.ID,
			Title:       p.Title,
			Type:        p.Type,
			Grade:       p.Grade,
			WordMinimum: p.WordMinimum,
			WordMaximum: p.WordMaximum,
		})
	}
	return out
}

// ThinkFirstFramework returns the five-step planning framework attached
// to every prompt detail view.
func (r *PromptRepository) ThinkFirstFramework() []model.ThinkFirstStep {
	return thinkFirstFramework
}

// Rubric returns the four-category writing rubric.
func (r *PromptRepository) Rubric() model.WritingRubric {
	return writingRubric
}

// StructureCheckQuestions returns the self-check questions students use
// to audit their own logical structure.
func (r *PromptRepository) StructureCheckQuestions() []string {
	return structureCheckQuestions
}

// AchievementLevels returns the Ontario Achievement Chart descriptors.
func AchievementLevels() []model.AchievementLevel {
	return achievementLevels
}
