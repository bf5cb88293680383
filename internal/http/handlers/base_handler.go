// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lazytrip/internal/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrCityRequired),
		errors.Is(err, session.ErrInvalidStep),
		errors.Is(err, session.ErrInvalidTag),
		errors.Is(err, session.ErrInvalidFrequency),
		errors.Is(err, session.ErrInvalidTransport),
		errors.Is(err, session.ErrInvalidPlan),
		errors.Is(err, session.ErrInvalidViewMode):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrInvalidTransition):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrDestinationNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
