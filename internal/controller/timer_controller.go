package controller

import (
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimerController struct {
	TimerService *service.TimerService
}

func NewTimerController(timerService *service.TimerService) *TimerController {
	return &TimerController{TimerService: timerService}
}

// @Summary 定时器状态
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer [get]
func (c *TimerController) State(ctx *gin.Context) {
	util.Success(ctx, c.TimerService.State())
}

// @Summary 开始倒计时
// @Description 从当前剩余时间继续；已在运行时为空操作
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer/start [post]
func (c *TimerController) Start(ctx *gin.Context) {
	c.TimerService.Start()
	util.Success(ctx, c.TimerService.State())
}

// @Summary 暂停倒计时
// @Description 暂停但不重置剩余时间；未运行时为空操作
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer/pause [post]
func (c *TimerController) Pause(ctx *gin.Context) {
	c.TimerService.Pause()
	util.Success(ctx, c.TimerService.State())
}

// @Summary 重置定时器
// @Description 停止倒计时并回到专注阶段的配置时长
// @Tags 番茄钟
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/timer/reset [post]
func (c *TimerController) Reset(ctx *gin.Context) {
	c.TimerService.Reset()
	util.Success(ctx, c.TimerService.State())
}

// @Summary 配置各阶段时长
// @Tags 番茄钟
// @Accept json
// @Produce json
// @Param durations body model.TimerDurations true "各阶段时长（分钟）"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/timer/durations [put]
func (c *TimerController) Configure(ctx *gin.Context) {
	var durations model.TimerDurations
	if err := ctx.ShouldBindJSON(&durations); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	if err := c.TimerService.Configure(durations); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.TimerService.State())
}
