package handler

import (
	"errors"
	"net/http"

	"marketgogo/backend/internal/translator"

	"github.com/gin-gonic/gin"
)

// GetTranslationUsage reports the external provider's quota counters.
func (h *Handler) GetTranslationUsage(c *gin.Context) {
	usage, err := h.Usage.Usage(c.Request.Context())
	if errors.Is(err, translator.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "translation provider not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch usage info"})
		return
	}

	c.JSON(http.StatusOK, usage)
}
