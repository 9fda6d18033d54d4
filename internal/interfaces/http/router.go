// Package http wires HTTP handlers into the gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dormdesk/internal/interfaces/http/handlers"
	"dormdesk/internal/interfaces/http/middleware"
	"dormdesk/internal/shared/logger"
)

type Router struct {
	engine       *gin.Engine
	syncHandler  *handlers.SyncHandler
	issueHandler *handlers.IssueHandler
}

func NewRouter(
	mode string,
	allowedOrigins []string,
	syncHandler *handlers.SyncHandler,
	issueHandler *handlers.IssueHandler,
	log logger.Interface,
) *Router {
	gin.SetMode(ginMode(mode))

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(allowedOrigins),
	)

	r := &Router{
		engine:       engine,
		syncHandler:  syncHandler,
		issueHandler: issueHandler,
	}
	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		sync := api.Group("/sync")
		{
			sync.POST("/trigger", r.syncHandler.TriggerSync)
			sync.GET("/status", r.syncHandler.GetStatus)
			sync.GET("/runs", r.syncHandler.ListRuns)
		}

		issues := api.Group("/issues")
		{
			issues.GET("", r.issueHandler.ListIssues)
			issues.GET("/:id", r.issueHandler.GetIssue)
			issues.PATCH("/:id/status", r.issueHandler.UpdateStatus)
		}
	}
}

// Engine exposes the underlying gin engine for the HTTP server and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
