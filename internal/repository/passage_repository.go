package repository

import (
	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/util"
	"sort"
)

// PassageRepository serves the reading catalog. The catalog is built once
// at construction and never mutated, so lookups are safe for concurrent
// use without locking.
type PassageRepository struct {
	passages map[string]model.Passage
	order    []string
}

func NewPassageRepository() *PassageRepository {
	return newPassageRepository(readingCatalog())
}

// NewPassageRepositoryWith builds a repository over a fixture catalog.
func NewPassageRepositoryWith(passages []model.Passage) *PassageRepository {
	return newPassageRepository(passages)
}

func newPassageRepository(passages []model.Passage) *PassageRepository {
	r := &PassageRepository{passages: make(map[string]model.Passage, len(passages))}
	for _, p := range passages {
		r.passages[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	sort.Strings(r.order)
	return r
}

func (r *PassageRepository) FindByID(id string) (model.Passage, error) {
	p, ok := r.passages[id]
	if !ok {
		return model.Passage{}, util.ErrPassageNotFound
	}
	return p, nil
}

func (r *PassageRepository) List() []model.PassageSummary {
	out := make([]model.PassageSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.passages[id]
		related := p.RelatedTexts
		if related == nil {
			related = []string{}
		}
		out = append(out, model.PassageSummary{
			ID:            p.ID,
			Title:         p.Title,
			Type:          p.Type,
			Grade:         p.Grade,
			QuestionCount: len(p.Questions),
			Themes:        p.Themes,
			RelatedTexts:  related,
		})
	}
	return out
}
