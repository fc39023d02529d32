package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	eventrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	trackrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/track"
)

type trackRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func (h *Handlers) handleListTracks(c *gin.Context) {
	items, err := trackrepos.LoadAll(c.Request.Context(), h.pool)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) handleCreateTrack(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &model.Track{
		ID:      newID("track"),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := trackrepos.Create(c.Request.Context(), h.pool, item); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) handleGetTrack(c *gin.Context) {
	item, err := h.trackCache.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) handleUpdateTrack(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &model.Track{
		ID:      c.Param("id"),
		Name:    req.Name,
		Address: req.Address,
	}
	num, err := trackrepos.Update(c.Request.Context(), h.pool, item)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if num == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.trackCache.Invalidate(c.Request.Context(), item.ID)
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) handleDeleteTrack(c *gin.Context) {
	num, err := trackrepos.DeleteByID(c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if num == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.trackCache.Invalidate(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handlers) handleListTrackEvents(c *gin.Context) {
	items, err := eventrepos.LoadByTrackID(
		c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
