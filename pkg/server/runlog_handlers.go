package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	runlogrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/runlog"
)

// Lap times are accepted as-is; invalid values (zero, negative) are legal
// store content and simply never show up in the analytics.
type runLogRequest struct {
	EventID   string    `json:"eventId"`
	CarID     string    `json:"carId"`
	LapTime   float64   `json:"lapTime"`
	Timestamp time.Time `json:"ts"`
}

func (r *runLogRequest) toModel(id string) *model.RunLog {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &model.RunLog{
		ID:        id,
		EventID:   r.EventID,
		CarID:     r.CarID,
		LapTime:   r.LapTime,
		Timestamp: ts,
	}
}

func (h *Handlers) handleListRunLogs(c *gin.Context) {
	items, err := runlogrepos.LoadAll(c.Request.Context(), h.pool)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) handleCreateRunLog(c *gin.Context) {
	var req runLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := req.toModel(newID("run"))
	if err := runlogrepos.Create(c.Request.Context(), h.pool, item); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) handleUpdateRunLog(c *gin.Context) {
	var req runLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := req.toModel(c.Param("id"))
	num, err := runlogrepos.Update(c.Request.Context(), h.pool, item)
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

func (h *Handlers) handleDeleteRunLog(c *gin.Context) {
	num, err := runlogrepos.DeleteByID(c.Request.Context(), h.pool, c.Param("id"))
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
