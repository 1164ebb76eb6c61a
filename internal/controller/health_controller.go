package controller

import (
	"net/http"
	"time"

	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store     repository.KVStore
	StartedAt time.Time
}

func NewHealthController(store repository.KVStore) *HealthController {
	return &HealthController{Store: store, StartedAt: time.Now()}
}

// @Summary 健康检查
// @Description 返回服务状态、当前时间与运行秒数
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Store.Ping(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(c.StartedAt).Seconds(),
	})
}
