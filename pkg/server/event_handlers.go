package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	eventrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/event"
	runlogrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/runlog"
)

type eventRequest struct {
	TrackID string `json:"trackId"`
	Title   string `json:"title" binding:"required"`
	Date    string `json:"date" binding:"required"` // 2006-01-02
}

func (r *eventRequest) toModel(id string) (*model.Event, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return nil, err
	}
	return &model.Event{
		ID:      id,
		TrackID: r.TrackID,
		Title:   r.Title,
		Date:    date,
	}, nil
}

func (h *Handlers) handleListEvents(c *gin.Context) {
	items, err := eventrepos.LoadAll(c.Request.Context(), h.pool)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) handleCreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := req.toModel(newID("event"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := eventrepos.Create(c.Request.Context(), h.pool, item); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) handleGetEvent(c *gin.Context) {
	item, err := eventrepos.LoadByID(c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) handleUpdateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := req.toModel(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	num, err := eventrepos.Update(c.Request.Context(), h.pool, item)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if num == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) handleDeleteEvent(c *gin.Context) {
	num, err := eventrepos.DeleteByID(c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if num == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) handleListEventRunLogs(c *gin.Context) {
	items, err := runlogrepos.LoadByEventID(
		c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
