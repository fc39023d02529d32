package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rcgarage/rcprogram-manager-go/pkg/tools"
)

type gearRatioRequest struct {
	SpurTeeth     int             `json:"spurTeeth" binding:"required"`
	PinionTeeth   int             `json:"pinionTeeth" binding:"required"`
	InternalRatio decimal.Decimal `json:"internalRatio"`
}

func (r *gearRatioRequest) internal() decimal.Decimal {
	if r.InternalRatio.Sign() == 0 {
		return decimal.NewFromInt(1)
	}
	return r.InternalRatio
}

func (h *Handlers) handleGearRatio(c *gin.Context) {
	var req gearRatioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ratio, err := tools.GearRatio(req.SpurTeeth, req.PinionTeeth, req.internal())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratio": ratio})
}

type rolloutRequest struct {
	gearRatioRequest
	TireDiameterMM decimal.Decimal `json:"tireDiameterMm" binding:"required"`
}

func (h *Handlers) handleRollout(c *gin.Context) {
	var req rolloutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rollout, err := tools.Rollout(
		req.TireDiameterMM, req.SpurTeeth, req.PinionTeeth, req.internal())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rolloutMm": rollout})
}

type racePaceRequest struct {
	RaceLenSec float64 `json:"raceLenSec" binding:"required"`
	AvgLapSec  float64 `json:"avgLapSec" binding:"required"`
}

func (h *Handlers) handleRacePace(c *gin.Context) {
	var req racePaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	laps, remainder, err := tools.RacePace(
		time.Duration(req.RaceLenSec*float64(time.Second)),
		time.Duration(req.AvgLapSec*float64(time.Second)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"laps":         laps,
		"remainderSec": remainder.Seconds(),
	})
}
