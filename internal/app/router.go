package app

import (
	"literacy_edu_backend/docs"
	"literacy_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		reading := api.Group("/reading")
		{
			reading.GET("/passages", c.reading.ListPassages)
			reading.GET("/passages/:id", c.reading.GetPassage)
			reading.POST("/submit", c.reading.SubmitReading)
		}

		writing := api.Group("/writing")
		{
			writing.GET("/prompts", c.writing.ListPrompts)
			writing.GET("/prompts/:id", c.writing.GetPrompt)
			writing.POST("/submit", c.writing.SubmitWriting)
			writing.GET("/framework", c.writing.GetFramework)
			writing.GET("/rubric", c.writing.GetRubric)
			writing.GET("/self-check", c.writing.GetSelfCheck)
		}

		api.GET("/curriculum/achievement-levels", c.curriculum.GetAchievementLevels)
	}
}
