package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"issue-tracker-api/internal/response"
)

// HealthHandler reports process and storage health
type HealthHandler struct {
	db      *gorm.DB
	backend string
}

// NewHealthHandler creates a health handler. db is nil when the workbook
// backend is active.
func NewHealthHandler(db *gorm.DB, backend string) *HealthHandler {
	return &HealthHandler{db: db, backend: backend}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status":  "ok",
		"storage": h.backend,
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			response.SendJSON(c, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}

	response.SendJSON(c, http.StatusOK, status)
}
