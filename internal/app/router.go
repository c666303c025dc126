package app

import (
	"drive_safe_backend/internal/config"
	"drive_safe_backend/internal/middleware"
	"drive_safe_backend/internal/model"
	"drive_safe_backend/pkg/monitoring"

	"drive_safe_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes 注册全部路由，公开接口与原对外路径保持一致
func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/new_user", c.auth.Register)
		api.POST("/login", c.auth.Login)
		api.GET("/user_info/:userId", c.user.GetUserInfo)

		api.GET("/advices", c.advice.GetAdvices)
		api.GET("/advices/:adviceId", c.advice.GetAdvice)
		api.GET("/advices/tag/:tagId", c.advice.GetAdvicesByTag)
		api.GET("/advices/test/:adviceId", c.advice.GetAdviceTest)

		api.POST("/test_check/:userId/:adviceId", c.test.TestCheck)

		api.GET("/forum_questions", c.forum.GetQuestions)
		api.POST("/forum_questions", c.forum.CreateQuestion)
		api.GET("/forum_questions/:questionId", c.forum.GetQuestion)
		api.PUT("/forum_questions/:questionId", c.forum.UpdateQuestion)
		api.DELETE("/forum_questions/:questionId", c.forum.DeleteQuestion)

		api.GET("/forum_answers", c.forum.GetAnswers)
		api.POST("/forum_answers", c.forum.CreateAnswer)
		api.GET("/forum_answers/question/:questionId", c.forum.GetAnswersForQuestion)
		api.GET("/forum_answers/:answerId", c.forum.GetAnswer)
		api.PUT("/forum_answers/:answerId", c.forum.UpdateAnswer)
		api.DELETE("/forum_answers/:answerId", c.forum.DeleteAnswer)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.POST("/advices/:adviceId/like", c.advice.LikeAdvice)
		authorized.DELETE("/advices/:adviceId/like", c.advice.UnlikeAdvice)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/advices", c.admin.CreateAdvice)
		admin.PUT("/advices/:adviceId", c.admin.UpdateAdvice)
		admin.DELETE("/advices/:adviceId", c.admin.DeleteAdvice)

		admin.POST("/advices/:adviceId/questions", c.admin.CreateQuestion)
		admin.PUT("/questions/:questionId", c.admin.UpdateQuestion)
		admin.DELETE("/questions/:questionId", c.admin.DeleteQuestion)

		admin.GET("/tags", c.admin.ListTags)
		admin.POST("/tags", c.admin.CreateTag)
		admin.DELETE("/tags/:tagId", c.admin.DeleteTag)
	}
}
