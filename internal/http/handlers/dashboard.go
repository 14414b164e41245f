package handlers

import (
	"net/http"

	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardStats GET /dashboard/stats. Any failure reads as all-zero stats.
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := services.DashboardService{Deps: h.deps(c)}.Stats(c.Request.Context())
	if err != nil {
		swallow(c, "dashboard", "stats", err)
		stats = models.DashboardStats{}
	}
	c.JSON(http.StatusOK, stats)
}
