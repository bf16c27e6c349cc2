package api

import (
	"net/http"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles the comment endpoints nested under articles
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /v1/articles/:external_id/comments. Only active
// comments are returned.
func (h *CommentHandler) List(c *gin.Context) {
	externalID, ok := externalIDParam(c)
	if !ok {
		return
	}

	comments, err := h.services.Comment.ListForArticle(c.Request.Context(), externalID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create handles POST /v1/articles/:external_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	externalID, ok := externalIDParam(c)
	if !ok {
		return
	}

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), externalID, &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
