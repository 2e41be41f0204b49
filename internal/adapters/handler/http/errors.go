package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var ErrConfirmationRequired = errors.New("deletion must be confirmed with ?confirm=true")

var validationErrors = []error{
	domain.ErrHabitNameEmpty,
	domain.ErrTodoTitleEmpty,
	domain.ErrInvalidPriority,
	domain.ErrInvalidDateKey,
	domain.ErrInvalidMonth,
	domain.ErrStickerEmpty,
}

func statusFor(err error) int {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, domain.ErrHabitNotFound), errors.Is(err, domain.ErrTodoNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. extra, when non-nil, carries the
// in-memory result of a mutation whose save failed.
func respondError(c *gin.Context, err error, extra gin.H) {
	status := statusFor(err)

	body := gin.H{"error": err.Error()}
	switch status {
	case http.StatusInternalServerError:
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		body["error"] = "internal server error"
	case http.StatusServiceUnavailable:
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	for k, v := range extra {
		body[k] = v
	}

	c.JSON(status, body)
}

func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
