package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) handleTrackAnalytics(c *gin.Context) {
	stats, err := h.analytics.TrackAnalyticsLabeled(
		c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) handleAllTrackAnalytics(c *gin.Context) {
	stats, err := h.analytics.AllTrackAnalytics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
