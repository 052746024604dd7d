package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"requisicoes/internal/service"
	"requisicoes/pkg/response"

	"github.com/gin-gonic/gin"
)

// abortWithError maps service errors onto the response envelope
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrOptionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, response.Error(status, err.Error()))
}
