package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetSummary)
}

// GetSummary godoc
// @Summary Summary statistics for today
// @Tags    stats
// @Produce json
// @Success 200 {object} domain.Summary
// @Router  /stats [get]
func (h *StatsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context()))
}

type DashboardHandler struct {
	planner *services.Planner
}

func NewDashboardHandler(planner *services.Planner) *DashboardHandler {
	return &DashboardHandler{planner: planner}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Get)
}

// Get godoc
// @Summary Everything the main screen shows
// @Tags    stats
// @Produce json
// @Success 200 {object} services.Dashboard
// @Router  /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.planner.Dashboard(c.Request.Context()))
}
