// Package handler implements the HTTP surface: the authenticated management
// console API and the public workflow execute endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	glog "github.com/gin-contrib/slog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flowgate/internal/api/middleware"
	"flowgate/internal/auth"
	"flowgate/internal/gateway"
	"flowgate/internal/service"
)

// Executor runs one public workflow invocation end to end.
type Executor interface {
	Execute(ctx context.Context, inv gateway.Invocation) gateway.Result
}

// Server wires the services and the execution pipeline into HTTP handlers.
type Server struct {
	sessions  *auth.Manager
	auth      service.AuthService
	tokens    service.TokenService
	workflows service.WorkflowService
	logs      service.LogService
	executor  Executor
}

func NewServer(
	sessions *auth.Manager,
	authSvc service.AuthService,
	tokens service.TokenService,
	workflows service.WorkflowService,
	logs service.LogService,
	executor Executor,
) *Server {
	return &Server{
		sessions:  sessions,
		auth:      authSvc,
		tokens:    tokens,
		workflows: workflows,
		logs:      logs,
		executor:  executor,
	}
}

// SetupRoutes configures and returns the HTTP router with all API endpoints
func (s *Server) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(glog.SetLogger(
		glog.WithLogger(func(c *gin.Context, l *slog.Logger) *slog.Logger {
			return slog.Default()
		}),
	))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set(
			"Access-Control-Allow-Methods",
			"GET, POST, PUT, DELETE, OPTIONS",
		)
		c.Writer.Header().Set(
			"Access-Control-Allow-Headers",
			"Content-Type, Authorization",
		)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})

	router.GET("/api/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public execution endpoints. Intentionally unauthenticated; the
	// stored workflow carries its own upstream credential.
	exec := router.Group("/api/execute")
	{
		exec.GET("/logs/:workflowId", middleware.RequireAuth(s.sessions), s.listWorkflowLogs)
		exec.GET("/:workflowId", s.executeWorkflow)
		exec.POST("/:workflowId", s.executeWorkflow)
	}

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.GET("/me", middleware.RequireAuth(s.sessions), s.currentUser)
	}

	tokens := router.Group("/api/tokens", middleware.RequireAuth(s.sessions))
	{
		tokens.GET("", s.listTokens)
		tokens.POST("", s.createToken)
		tokens.PUT("/:id", s.updateToken)
		tokens.DELETE("/:id", s.deleteToken)
	}

	workflows := router.Group("/api/workflows", middleware.RequireAuth(s.sessions))
	{
		workflows.GET("", s.listWorkflows)
		workflows.POST("", s.createWorkflow)
		workflows.GET("/:workflowId", s.getWorkflow)
		workflows.PUT("/:workflowId", s.updateWorkflow)
		workflows.DELETE("/:workflowId", s.deleteWorkflow)
	}

	logs := router.Group("/api/logs", middleware.RequireAuth(s.sessions))
	{
		logs.GET("", s.listLogs)
		logs.GET("/stats/summary", s.logStats)
		logs.GET("/:id", s.getLog)
		logs.DELETE("", s.deleteLogs)
	}

	return router
}
