package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapratama/survei-server/controllers"
	"github.com/yudhapratama/survei-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/google/login", controllers.GoogleLoginHandler)
		}

		// Sisi responden: tanpa login
		api.GET("/questions", controllers.GetQuestions)
		api.POST("/responses", middleware.RateLimitSubmit(), controllers.SubmitResponse)
		drafts := api.Group("/drafts")
		{
			drafts.PUT("/:key", controllers.PutDraft)
			drafts.GET("/:key", controllers.GetDraft)
			drafts.DELETE("/:key", controllers.DeleteDraft)
		}

		// Sisi petugas: rekap, chart, stream, ekspor
		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
			protected.GET("/responses", controllers.ListResponses)
			protected.GET("/responses/stats", controllers.GetStats)
			protected.GET("/responses/summary", controllers.GetSummary)
			protected.GET("/responses/stream", controllers.StreamResponses)
			protected.POST("/responses/export", controllers.CreateExport)
			protected.GET("/exports/:job_id", controllers.GetExport)
		}
	}
}
