package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "project-roadmap-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors onto HTTP status codes. Invalid
// transitions and lock contention both surface as 409; contention carries a
// retryable hint so callers know a repeat of the same request is safe.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err), errors.Is(err, apperrors.ErrRoadmapNotStarted):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConcurrentModification(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})
	case apperrors.IsValidation(err) || isValidationFailure(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// isValidationFailure detects wrapped go-playground/validator errors coming
// out of the service layer.
func isValidationFailure(err error) bool {
	return err != nil && strings.Contains(err.Error(), "validation failed")
}

// pagination reads page/page_size query parameters with defaults
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
