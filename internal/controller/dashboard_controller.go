package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	Refresh          *service.Debouncer
}

func NewDashboardController(dashboardService *service.DashboardService, refresh *service.Debouncer) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, Refresh: refresh}
}

// @Summary 聚合面板
// @Description 顶栏与个人页数据：汇总、连续天数、今日时长、徽章计数、目标进度、专注统计
// @Tags 面板
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	c.Refresh.Flush()
	util.Success(ctx, c.DashboardService.Dashboard())
}
