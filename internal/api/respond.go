package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/article-mirror-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors onto HTTP responses. Ownership
// violations arrive here already folded into ErrNotFound, so nothing
// about other users' resources leaks.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *service.ValidationFailedError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Errors})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Bookmark already exists."})
	case errors.Is(err, service.ErrSyncInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "sync already in progress"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// externalIDParam parses the :external_id path parameter
func externalIDParam(c *gin.Context) (int64, bool) {
	externalID, err := strconv.ParseInt(c.Param("external_id"), 10, 64)
	if err != nil || externalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid external id"})
		return 0, false
	}
	return externalID, true
}
