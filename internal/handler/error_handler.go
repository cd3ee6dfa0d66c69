package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/response"
)

// handleServiceError maps service-layer errors onto HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case response.ErrCodeValidation:
			response.SendError(c, http.StatusBadRequest, appErr.Code, appErr.Message)
		case response.ErrCodeNotFound:
			response.SendError(c, http.StatusNotFound, appErr.Code, appErr.Message)
		case response.ErrCodeStorage:
			response.SendError(c, http.StatusInternalServerError, appErr.Code, appErr.Message)
		default:
			response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, appErr.Message)
		}
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Record not found")
		return
	}
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}
