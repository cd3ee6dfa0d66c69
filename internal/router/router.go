// Package router assembles the gin engine: middleware, API routes and the
// operational endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"issue-tracker-api/internal/events"
	"issue-tracker-api/internal/handler"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/middleware"
	"issue-tracker-api/internal/service"
)

// Config holds all dependencies the router needs
type Config struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	IssueService   service.IssueService
	ProjectService service.ProjectService
	CommentService service.CommentService
	Hub            *events.Hub
	DB             *gorm.DB
	StorageBackend string
	AllowedOrigins []string
}

// Setup creates and configures the gin engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.StorageBackend)
	issueHandler := handler.NewIssueHandler(cfg.IssueService)
	projectHandler := handler.NewProjectHandler(cfg.ProjectService)
	commentHandler := handler.NewCommentHandler(cfg.CommentService)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/projects", projectHandler.ListProjects)

		api.GET("/issues", issueHandler.ListIssues)
		api.POST("/issues", issueHandler.CreateIssue)
		api.PUT("/issues/:id", issueHandler.UpdateIssue)
		api.DELETE("/issues/:id", issueHandler.DeleteIssue)

		api.GET("/comments/:issueId", commentHandler.ListComments)
		api.POST("/comments", commentHandler.CreateComment)

		if cfg.Hub != nil {
			api.GET("/events", cfg.Hub.HandleWebSocket)
		}
	}

	return r
}
