//nolint:dupl // same shape as the track handlers
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcgarage/rcprogram-manager-go/pkg/model"
	carrepos "github.com/rcgarage/rcprogram-manager-go/pkg/repository/car"
)

type carRequest struct {
	Name  string `json:"name" binding:"required"`
	Class string `json:"class"`
}

func (h *Handlers) handleListCars(c *gin.Context) {
	items, err := carrepos.LoadAll(c.Request.Context(), h.pool)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handlers) handleCreateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &model.Car{
		ID:    newID("car"),
		Name:  req.Name,
		Class: req.Class,
	}
	if err := carrepos.Create(c.Request.Context(), h.pool, item); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handlers) handleGetCar(c *gin.Context) {
	item, err := carrepos.LoadByID(c.Request.Context(), h.pool, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handlers) handleUpdateCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &model.Car{
		ID:    c.Param("id"),
		Name:  req.Name,
		Class: req.Class,
	}
	num, err := carrepos.Update(c.Request.Context(), h.pool, item)
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

func (h *Handlers) handleDeleteCar(c *gin.Context) {
	num, err := carrepos.DeleteByID(c.Request.Context(), h.pool, c.Param("id"))
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
