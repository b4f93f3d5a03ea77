package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Pinger reports whether an optional dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /health and /version
type HealthHandler struct {
	build        BuildInfo
	modelVersion string
	auditLog     Pinger
}

// NewHealthHandler creates a health handler. auditLog may be nil when the audit log is disabled.
func NewHealthHandler(build BuildInfo, modelVersion string, auditLog Pinger) *HealthHandler {
	return &HealthHandler{
		build:        build,
		modelVersion: modelVersion,
		auditLog:     auditLog,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	auditStatus := "disabled"
	if h.auditLog != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.auditLog.Ping(ctx); err != nil {
			status = "degraded"
			auditStatus = "unreachable"
		} else {
			auditStatus = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        status,
		"service":       "house-price-predictor",
		"version":       h.build.Version,
		"build_time":    h.build.BuildTime,
		"git_commit":    h.build.GitCommit,
		"model_version": h.modelVersion,
		"audit_log":     auditStatus,
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    h.build.Version,
		"build_time": h.build.BuildTime,
		"git_commit": h.build.GitCommit,
	})
}
