package main

import (
	"path/filepath"
	"time"

	"github.com/gameface/payloadstore/handlers"
	"github.com/gameface/payloadstore/internal/config"
	"github.com/gameface/payloadstore/internal/payload/handler"
	"github.com/gameface/payloadstore/internal/payload/service"
	"github.com/gameface/payloadstore/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// newRouter builds the HTTP engine. rdb may be nil; it is only consulted when
// the Redis-backed rate limiter is enabled.
func newRouter(cfg *config.Config, svc service.Service, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	fileName := filepath.Base(cfg.Store.Path)

	handlers.RegisterHealth(r, map[string]handlers.ReadinessCheck{"storage": svc.Ready})
	handlers.RegisterSwagger(r, fileName)
	handler.RegisterPayloadRoutes(r, svc, handler.Options{
		FileName:     fileName,
		MaxBodyBytes: cfg.Store.MaxBodyBytes,
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
