package controller

import (
	"literacy_edu_backend/internal/repository"
	"literacy_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct{}

func NewCurriculumController() *CurriculumController {
	return &CurriculumController{}
}

// @Summary Get Ontario achievement level descriptors
// @Tags Curriculum
// @Produce json
// @Success 200 {object} util.Response
// @Router /curriculum/achievement-levels [get]
func (c *CurriculumController) GetAchievementLevels(ctx *gin.Context) {
	util.Success(ctx, repository.AchievementLevels())
}
