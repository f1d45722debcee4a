package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OMoWiCe/admin-api/config"
	"github.com/OMoWiCe/admin-api/internal/api/handler"
	"github.com/OMoWiCe/admin-api/internal/api/middleware"
	"github.com/OMoWiCe/admin-api/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 写接口限流（读接口不限）
	writeLimit := middleware.RateLimit(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	// ── API v1 ──
	v1 := r.Group("/v1")
	{
		locations := v1.Group("/locations")
		{
			locations.GET("", h.Location.ListLocations)
			locations.POST("/add", writeLimit, h.Location.AddLocation)
			locations.PUT("/update/:locationId", writeLimit, h.Location.UpdateLocation)
			locations.DELETE("/remove/:locationId", writeLimit, h.Location.DeleteLocation)
		}
	}

	return r
}
