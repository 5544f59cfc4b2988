package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/middleware"
)

// RouterDeps - зависимости HTTP роутера
type RouterDeps struct {
	Questions  *QuestionHandler
	Categories *CategoryHandler
	Quiz       *QuizHandler
	Health     *HealthHandler

	// Metrics необязательны: nil отключает сбор метрик и /metrics
	Metrics *middleware.Metrics
	Logger  *logrus.Logger

	// AllowOrigins - разрешённые CORS origins; "*" или пустой список разрешают все
	AllowOrigins []string
}

// NewRouter настраивает маршруты API. Пути без префикса.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		middleware.Logger(c).WithField("panic", recovered).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, msgInternal))
	}))
	router.Use(cors.New(corsConfig(deps.AllowOrigins)))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, msgNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed))
	})

	if deps.Health != nil {
		router.GET("/health", deps.Health.Health)
	}

	router.GET("/categories", deps.Categories.ListCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		deps.Questions.ListQuestionsByCategory)

	questions := router.Group("/questions")
	{
		questions.GET("", deps.Questions.ListQuestions)
		questions.POST("", deps.Questions.CreateQuestion)
		questions.POST("/search", deps.Questions.SearchQuestions)
		questions.GET("/export", deps.Questions.ExportQuestions)
		questions.DELETE("/:id", middleware.ExtractUintParam("id", "questionID"), deps.Questions.DeleteQuestion)
	}

	router.POST("/quiz", deps.Quiz.NextQuestion)

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	return config
}
