package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.POST("/:id/complete", h.Complete)
		habits.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary     List habits
// @Description Habits in insertion order with weekly completion and today's status
// @Tags        habits
// @Produce     json
// @Success     200 {array} services.HabitView
// @Router      /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Create godoc
// @Summary Create a habit
// @Tags    habits
// @Accept  json
// @Produce json
// @Param   habit body createHabitRequest true "Habit"
// @Success 201 {object} domain.Habit
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]interface{}
// @Router  /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.svc.Add(c.Request.Context(), services.CreateHabitInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		var extra gin.H
		if habit != nil {
			extra = gin.H{"habit": habit}
		}
		respondError(c, err, extra)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// Complete godoc
// @Summary     Mark a habit done today
// @Description Idempotent within a day: a second call leaves the streak unchanged
// @Tags        habits
// @Produce     json
// @Param       id path string true "Habit ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]string
// @Router      /habits/{id}/complete [post]
func (h *HabitHandler) Complete(c *gin.Context) {
	habit, changed, err := h.svc.ToggleToday(c.Request.Context(), c.Param("id"))
	if err != nil {
		var extra gin.H
		if habit != nil {
			extra = gin.H{"habit": habit, "changed": changed}
		}
		respondError(c, err, extra)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habit":   habit,
		"changed": changed,
	})
}

// Delete godoc
// @Summary Delete a habit
// @Tags    habits
// @Param   id      path  string true "Habit ID"
// @Param   confirm query bool   true "Must be true"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 428 {object} map[string]string
// @Router  /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		respondError(c, ErrConfirmationRequired, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, nil)
		return
	}

	c.Status(http.StatusNoContent)
}
