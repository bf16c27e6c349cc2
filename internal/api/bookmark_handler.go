package api

import (
	"net/http"
	"strconv"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BookmarkHandler handles bookmark endpoints. All routes sit behind the
// auth middleware, so the user id is always present in the context.
type BookmarkHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(services *service.Services, log zerolog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		services: services,
		log:      log.With().Str("handler", "bookmark").Logger(),
	}
}

// Create handles POST /v1/bookmarks. The body carries the article's
// external id; bookmarking the same article twice returns a conflict
// message rather than a second row.
func (h *BookmarkHandler) Create(c *gin.Context) {
	var input models.BookmarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bookmark, err := h.services.Bookmark.Create(c.Request.Context(), c.GetString(userIDKey), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// List handles GET /v1/bookmarks, scoped to the requesting user
func (h *BookmarkHandler) List(c *gin.Context) {
	bookmarks, err := h.services.Bookmark.List(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// Delete handles DELETE /v1/bookmarks/:id. Deleting another user's
// bookmark reports not found.
func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	if err := h.services.Bookmark.Delete(c.Request.Context(), c.GetString(userIDKey), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
