package server

import (
	"errors"
	"net/http"

	"scoreboard/internal/scores"

	"github.com/gin-gonic/gin"
)

type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}

// statusFor maps the store taxonomy onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, scores.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// publicMessage keeps driver detail out of responses.
func publicMessage(err error) string {
	if errors.Is(err, scores.ErrInvalidInput) {
		return err.Error()
	}
	return scores.ErrStoreUnavailable.Error()
}
