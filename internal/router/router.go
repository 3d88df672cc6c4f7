package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizzly/trivia-backend/internal/config"
	"github.com/quizzly/trivia-backend/internal/handler"
	"github.com/quizzly/trivia-backend/internal/middleware"
	"github.com/quizzly/trivia-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Category *handler.CategoryHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
}

// SetupRouter configures the Gin engine with CORS, middlewares and all
// /api routes.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so any frontend origin works.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// Rate limiter for mutating endpoints (30 requests per minute per IP).
	writeLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			response.OK(c, nil)
		})

		api.GET("/categories", handlers.Category.ListCategories)
		api.GET("/categories/:id/questions", handlers.Category.ListQuestionsByCategory)

		api.GET("/questions", handlers.Question.ListQuestions)
		api.POST("/questions", writeLimiter.Middleware(), handlers.Question.CreateQuestion)
		api.DELETE("/questions/:id", writeLimiter.Middleware(), handlers.Question.DeleteQuestion)

		api.POST("/search", handlers.Question.SearchQuestions)
		api.POST("/quizzes", handlers.Quiz.NextQuestion)
	}

	return router
}
