package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports backing-store reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health serves the liveness/readiness endpoint.
type Health struct {
	db Pinger
}

// NewHealth returns the health handler. db may be nil, then only process
// liveness is reported.
func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

// Check reports 200 when the process and the database are healthy.
func (h *Health) Check(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
