package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse is the error body contract: a machine-readable tag plus a
// human-readable message. Success bodies are the bare view object.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func Error(c *gin.Context, status int, tag, message string) {
	c.JSON(status, errorResponse{Error: tag, Message: message})
}

func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal_error", "internal server error")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "not_found", message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "invalid_body", message)
}
