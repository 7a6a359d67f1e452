package controller

import (
	"literacy_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	aiConfigured bool
}

func NewHealthController(aiConfigured bool) *HealthController {
	return &HealthController{aiConfigured: aiConfigured}
}

// @Summary Health check
// @Description Reports service status and which writing-evaluation backend is active.
// @Tags System
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	backend := "heuristic"
	if c.aiConfigured {
		backend = "remote_model"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"writing_evaluator": backend,
		},
	})
}
