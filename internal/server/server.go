// Package server exposes the analytic engines over HTTP. Every request
// reads one snapshot from the store and recomputes from scratch; handlers
// hold no state of their own.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gyeh/revguard/internal/config"
	"github.com/gyeh/revguard/internal/dataset"
)

// Server wires the dataset store to the HTTP API.
type Server struct {
	store          *dataset.Store
	log            zerolog.Logger
	maxUploadBytes int64
	force          bool
}

// New returns a Server over the given store.
func New(store *dataset.Store, log zerolog.Logger, cfg *config.Config) *Server {
	return &Server{
		store:          store,
		log:            log,
		maxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		force:          cfg.Force,
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "revguard API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.GET("/upload/files", s.handleListFiles)
		api.GET("/upload/files/:filename", s.handleFileData)

		api.GET("/risk/scores", s.handleRiskScores)
		api.GET("/risk/scores/:account_id", s.handleAccountRisk)

		api.GET("/fraud/alerts", s.handleFraudAlerts)
		api.GET("/fraud/alerts/:transaction_id", s.handleFraudDetail)

		api.GET("/anomaly/alerts", s.handleAnomalyAlerts)
		api.GET("/anomaly/heatmap", s.handleHeatmap)
		api.GET("/anomaly/department", s.handleDepartmentDetail)

		api.GET("/forecast", s.handleForecast)

		api.GET("/plans", s.handleAllPlans)
		api.GET("/plans/:account_id", s.handleAccountPlan)
		api.GET("/plans/:account_id/history", s.handlePaymentHistory)

		api.GET("/audit/logs", s.handleAuditLogs)
		api.GET("/audit/access", s.handleAccessAlerts)
		api.GET("/audit/exports", s.handleExportLogs)
		api.GET("/audit/user/:user_id", s.handleUserActivity)
	}
	return r
}

// requestLog emits one structured line per request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}
