package controller

import (
	"errors"
	"literacy_edu_backend/internal/service"
	"literacy_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WritingController struct {
	Service *service.WritingService
}

func NewWritingController(svc *service.WritingService) *WritingController {
	return &WritingController{Service: svc}
}

// @Summary List writing prompts
// @Tags Writing
// @Produce json
// @Success 200 {object} util.Response
// @Router /writing/prompts [get]
func (c *WritingController) ListPrompts(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListPrompts())
}

// @Summary Get a writing prompt
// @Description Returns the prompt together with the Think First planning framework.
// @Tags Writing
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /writing/prompts/{id} [get]
func (c *WritingController) GetPrompt(ctx *gin.Context) {
	p, err := c.Service.GetPrompt(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPromptNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, p)
}

// WritingSubmission carries a student's written response.
type WritingSubmission struct {
	PromptID string `json:"prompt_id" binding:"required"`
	Response string `json:"response"`
}

// @Summary Evaluate a writing submission
// @Description Scores the submission with the configured model backend, or the heuristic evaluator when the model is unavailable.
// @Tags Writing
// @Accept json
// @Produce json
// @Param body body WritingSubmission true "Submitted text"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /writing/submit [post]
func (c *WritingController) SubmitWriting(ctx *gin.Context) {
	var req WritingSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Evaluate(ctx.Request.Context(), req.PromptID, req.Response)
	if err != nil {
		if errors.Is(err, util.ErrPromptNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary Get the Think First planning framework
// @Tags Writing
// @Produce json
// @Success 200 {object} util.Response
// @Router /writing/framework [get]
func (c *WritingController) GetFramework(ctx *gin.Context) {
	util.Success(ctx, c.Service.Repo.ThinkFirstFramework())
}

// @Summary Get the writing rubric
// @Tags Writing
// @Produce json
// @Success 200 {object} util.Response
// @Router /writing/rubric [get]
func (c *WritingController) GetRubric(ctx *gin.Context) {
	util.Success(ctx, c.Service.Rubric())
}

// @Summary Get structure self-check questions
// @Tags Writing
// @Produce json
// @Success 200 {object} util.Response
// @Router /writing/self-check [get]
func (c *WritingController) GetSelfCheck(ctx *gin.Context) {
	util.Success(ctx, c.Service.StructureCheckQuestions())
}
