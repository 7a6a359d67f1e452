package controller

import (
	"errors"
	"literacy_edu_backend/internal/service"
	"literacy_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReadingController struct {
	Service *service.ReadingService
}

func NewReadingController(svc *service.ReadingService) *ReadingController {
	return &ReadingController{Service: svc}
}

// @Summary List reading passages
// @Tags Reading
// @Produce json
// @Success 200 {object} util.Response
// @Router /reading/passages [get]
func (c *ReadingController) ListPassages(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListPassages())
}

// @Summary Get a passage for taking the test
// @Description Returns the passage with answer keys and explanations stripped.
// @Tags Reading
// @Produce json
// @Param id path string true "Passage ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /reading/passages/{id} [get]
func (c *ReadingController) GetPassage(ctx *gin.Context) {
	p, err := c.Service.GetPassage(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPassageNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, p)
}

// ReadingSubmission carries a student's answers. Values are left untyped
// so malformed entries degrade to "incorrect" instead of rejecting the
// whole submission.
type ReadingSubmission struct {
	PassageID string                 `json:"passage_id" binding:"required"`
	Answers   map[string]interface{} `json:"answers"`
}

// @Summary Score a reading submission
// @Tags Reading
// @Accept json
// @Produce json
// @Param body body ReadingSubmission true "Submitted answers"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /reading/submit [post]
func (c *ReadingController) SubmitReading(ctx *gin.Context) {
	var req ReadingSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Score(req.PassageID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrPassageNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
