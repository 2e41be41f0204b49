package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

type TodoHandler struct {
	svc *services.TodoService
}

func NewTodoHandler(svc *services.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

type createTodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Subject  string `json:"subject"`
	DueDate  string `json:"dueDate" binding:"required"`
	Priority string `json:"priority"`
}

func (h *TodoHandler) RegisterRoutes(router *gin.RouterGroup) {
	todos := router.Group("/todos")
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary     List todos
// @Description Incomplete todos first, then by due date
// @Tags        todos
// @Produce     json
// @Success     200 {array} services.TodoView
// @Router      /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SortedView(c.Request.Context()))
}

// Create godoc
// @Summary Create a todo
// @Tags    todos
// @Accept  json
// @Produce json
// @Param   todo body createTodoRequest true "Todo"
// @Success 201 {object} domain.Todo
// @Failure 400 {object} map[string]string
// @Router  /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.svc.Add(c.Request.Context(), services.CreateTodoInput{
		Title:    req.Title,
		Subject:  req.Subject,
		DueDate:  req.DueDate,
		Priority: req.Priority,
	})
	if err != nil {
		var extra gin.H
		if todo != nil {
			extra = gin.H{"todo": todo}
		}
		respondError(c, err, extra)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Toggle godoc
// @Summary Flip a todo's completed flag
// @Tags    todos
// @Produce json
// @Param   id path string true "Todo ID"
// @Success 200 {object} domain.Todo
// @Failure 404 {object} map[string]string
// @Router  /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *gin.Context) {
	todo, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		var extra gin.H
		if todo != nil {
			extra = gin.H{"todo": todo}
		}
		respondError(c, err, extra)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags    todos
// @Param   id      path  string true "Todo ID"
// @Param   confirm query bool   true "Must be true"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 428 {object} map[string]string
// @Router  /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
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
