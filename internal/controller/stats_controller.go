package controller

import (
	"fmt"
	"net/http"

	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService  *service.StatsService
	StreakService *service.StreakService
}

func NewStatsController(statsService *service.StatsService, streakService *service.StreakService) *StatsController {
	return &StatsController{StatsService: statsService, StreakService: streakService}
}

// @Summary 汇总统计
// @Description 总时长、平均时长、平均成绩、学得最多/最少的科目
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/summary [get]
func (c *StatsController) Summary(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Summary())
}

// @Summary 按日统计
// @Description 最近 30 个有记录的日期，升序，用于时间序列图
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/daily [get]
func (c *StatsController) Daily(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Daily())
}

// @Summary 按科目统计
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/subjects [get]
func (c *StatsController) Subjects(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.SubjectTotals())
}

// @Summary 高级分析
// @Description 总览、时段分布、科目明细
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/analytics [get]
func (c *StatsController) Analytics(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Analytics())
}

// @Summary 连续学习天数
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/streak [get]
func (c *StatsController) Streak(ctx *gin.Context) {
	util.Success(ctx, c.StreakService.Info())
}

// @Summary 导出 CSV
// @Description 列序固定为 Date,Subject,Hours,Grade,Notes，按录入顺序一行一条
// @Tags 统计
// @Produce text/csv
// @Success 200 {string} string
// @Router /api/export [get]
func (c *StatsController) Export(ctx *gin.Context) {
	data, filename := c.StatsService.ExportCSV()
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
