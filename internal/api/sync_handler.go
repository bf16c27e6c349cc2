package api

import (
	"net/http"

	"github.com/article-mirror-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SyncHandler exposes a manual trigger for the ingestion pipeline, in
// addition to the scheduled runs.
type SyncHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(services *service.Services, log zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		services: services,
		log:      log.With().Str("handler", "sync").Logger(),
	}
}

// Trigger handles POST /v1/sync. A run already in flight yields a
// conflict; the caller can simply retry after it finishes.
func (h *SyncHandler) Trigger(c *gin.Context) {
	result, err := h.services.Sync.Sync(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
