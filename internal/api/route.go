package api

import (
	"Sokdak/internal/api/config"
	"Sokdak/internal/api/middleware"
	"Sokdak/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	logger.SetupGin(r)
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	postGroup := r.Group("/posts")
	{
		postGroup.GET("", group.PostHandler.ListPosts)
		postGroup.GET("/:post_id", group.PostHandler.GetPost)

		writeGroup := postGroup.Group("")
		writeGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		{
			writeGroup.POST("", group.PostHandler.CreatePost)
			writeGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
			writeGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "요청한 경로를 찾을 수 없습니다."})
	})

	return r
}
