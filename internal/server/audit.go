package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyeh/revguard/internal/audit"
	"github.com/gyeh/revguard/internal/model"
)

func (s *Server) handleAuditLogs(c *gin.Context) {
	logs := s.store.Current().AuditLog
	if logs == nil {
		logs = []model.AuditEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": len(logs)})
}

func (s *Server) handleAccessAlerts(c *gin.Context) {
	alerts := audit.SuspiciousAccess(s.store.Current().AuditLog)
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": len(alerts)})
}

func (s *Server) handleExportLogs(c *gin.Context) {
	exports := audit.ExportLogs(s.store.Current().AuditLog)
	c.JSON(http.StatusOK, gin.H{"exports": exports, "total": len(exports)})
}

func (s *Server) handleUserActivity(c *gin.Context) {
	userID := c.Param("user_id")
	logs := audit.UserActivity(s.store.Current().AuditLog, userID)
	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"logs":    logs,
		"total":   len(logs),
	})
}
