package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gameface/payloadstore/pkg/logger"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// ReadinessCheck reports whether one dependency is usable.
type ReadinessCheck func(ctx context.Context) error

// RegisterHealth registers /health (liveness) and /ready (readiness).
// /ready returns 200 only when every named check passes.
func RegisterHealth(r gin.IRoutes, checks map[string]ReadinessCheck) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		deps := map[string]bool{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Warnf("readiness: %s: %v", name, err)
				deps[name] = false
				ready = false
				continue
			}
			deps[name] = true
		}

		uptime := time.Since(startTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
