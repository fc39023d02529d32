package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/rcgarage/rcprogram-manager-go/log"
	"github.com/rcgarage/rcprogram-manager-go/pkg/processing"
)

func (h *Handlers) respondError(c *gin.Context, err error) {
	var vErr *processing.ValidationError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	default:
		h.logger.Error("request failed",
			log.String("path", c.FullPath()),
			log.ErrorField(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
