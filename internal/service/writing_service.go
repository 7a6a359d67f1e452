package service

import (
	"context"
	"literacy_edu_backend/internal/model"
	"literacy_edu_backend/internal/repository"
	"literacy_edu_backend/internal/util"
	"literacy_edu_backend/pkg/logger"
	"literacy_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// WritingService evaluates writing submissions. The backend is fixed at
// construction; when the remote backend fails, the service absorbs the
// error and produces a heuristic evaluation instead, so a valid prompt id
// always yields a complete result.
type WritingService struct {
	Repo      *repository.PromptRepository
	backend   TextEvaluationBackend
	heuristic *HeuristicBackend
}

func NewWritingService(repo *repository.PromptRepository, backend TextEvaluationBackend) *WritingService {
	return &WritingService{
		Repo:      repo,
		backend:   backend,
		heuristic: NewHeuristicBackend(),
	}
}

func (s *WritingService) ListPrompts() []model.PromptSummary {
	return s.Repo.List()
}

func (s *WritingService) GetPrompt(id string) (model.PromptDetail, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return model.PromptDetail{}, err
	}
	return model.PromptDetail{
		WritingPrompt:       p,
		ThinkFirstFramework: s.Repo.ThinkFirstFramework(),
	}, nil
}

func (s *WritingService) Rubric() model.WritingRubric {
	return s.Repo.Rubric()
}

func (s *WritingService) StructureCheckQuestions() []string {
	return s.Repo.StructureCheckQuestions()
}

// Evaluate resolves the prompt, computes text metrics, and runs the
// configured evaluation backend.
func (s *WritingService) Evaluate(ctx context.Context, promptID, text string) (*model.WritingResult, error) {
	prompt, err := s.Repo.FindByID(promptID)
	if err != nil {
		return nil, err
	}

	metrics := util.ComputeTextMetrics(text)

	aiPowered := s.backend.AIPowered()
	evaluation, err := s.backend.Evaluate(ctx, prompt, text, metrics)
	if err != nil {
		logger.Log.Error("remote writing evaluation failed, falling back to heuristic",
			zap.String("prompt_id", promptID), zap.Error(err))
		if aiPowered {
			monitoring.RemoteEvaluationCounter.WithLabelValues("failure").Inc()
		}
		aiPowered = false
		evaluation, _ = s.heuristic.Evaluate(ctx, prompt, text, metrics)
	} else if aiPowered {
		monitoring.RemoteEvaluationCounter.WithLabelValues("success").Inc()
	}

	return &model.WritingResult{
		PromptID:    promptID,
		PromptTitle: prompt.Title,
		PromptType:  prompt.Type,
		TextMetrics: model.WritingMetrics{
			TextMetrics: metrics,
			WordMinimum: prompt.WordMinimum,
			WordMaximum: prompt.WordMaximum,
		},
		Evaluation: evaluation,
		AIPowered:  aiPowered,
	}, nil
}
