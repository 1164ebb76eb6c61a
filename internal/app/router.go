package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"study_tracker_backend/internal/config"
	"study_tracker_backend/pkg/monitoring"

	"study_tracker_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"

	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		logs := api.Group("/logs")
		{
			logs.POST("", c.log.Create)
			logs.GET("", c.log.List)
			logs.DELETE("", c.log.Clear)
			logs.DELETE("/:id", c.log.Delete)
			logs.GET("/subjects", c.log.Subjects)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/summary", c.stats.Summary)
			stats.GET("/daily", c.stats.Daily)
			stats.GET("/subjects", c.stats.Subjects)
			stats.GET("/analytics", c.stats.Analytics)
		}

		api.GET("/streak", c.stats.Streak)
		api.GET("/export", c.stats.Export)

		goal := api.Group("/goal")
		{
			goal.GET("", c.goal.Get)
			goal.PUT("", c.goal.Set)
			goal.DELETE("", c.goal.Reset)
			goal.GET("/progress", c.goal.Progress)
		}

		achievements := api.Group("/achievements")
		{
			achievements.GET("", c.achievement.List)
			achievements.GET("/unread", c.achievement.Unread)
		}

		timer := api.Group("/timer")
		{
			timer.GET("", c.timer.State)
			timer.POST("/start", c.timer.Start)
			timer.POST("/pause", c.timer.Pause)
			timer.POST("/reset", c.timer.Reset)
			timer.PUT("/durations", c.timer.Configure)
		}

		api.GET("/dashboard", c.dashboard.Get)

		backup := api.Group("/backup")
		{
			backup.GET("", c.backup.Snapshot)
			backup.POST("", c.backup.Upload)
		}

		preferences := api.Group("/preferences")
		{
			preferences.GET("", c.preference.Get)
			preferences.PUT("", c.preference.Update)
		}

		api.DELETE("/data", c.data.Wipe)
	}

	registerStatic(router, cfg.Server.StaticDir)
}

// registerStatic 托管前端壳：根路径回 index.html，其余静态文件按需回源，
// 未知路径回壳并带 404（API 路径除外）
func registerStatic(router *gin.Engine, staticDir string) {
	index := filepath.Join(staticDir, "index.html")

	router.GET("/", func(ctx *gin.Context) {
		ctx.File(index)
	})

	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "route not found"})
			return
		}

		file := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			ctx.File(file)
			return
		}

		body, err := os.ReadFile(index)
		if err != nil {
			ctx.Status(http.StatusNotFound)
			return
		}
		ctx.Data(http.StatusNotFound, "text/html; charset=utf-8", body)
	})
}
