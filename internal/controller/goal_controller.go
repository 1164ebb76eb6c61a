package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type setGoalRequest struct {
	Hours float64 `json:"hours"`
}

// @Summary 当前每日目标
// @Tags 目标
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goal [get]
func (c *GoalController) Get(ctx *gin.Context) {
	util.Success(ctx, gin.H{"hours": c.GoalService.Goal()})
}

// @Summary 设置每日目标
// @Description 目标必须为正数，非法值不修改任何状态
// @Tags 目标
// @Accept json
// @Produce json
// @Param goal body setGoalRequest true "每日目标小时数"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/goal [put]
func (c *GoalController) Set(ctx *gin.Context) {
	var req setGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	if err := c.GoalService.Set(ctx.Request.Context(), req.Hours); err != nil {
		if util.IsValidation(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"hours": req.Hours})
}

// @Summary 重置每日目标
// @Tags 目标
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goal [delete]
func (c *GoalController) Reset(ctx *gin.Context) {
	if err := c.GoalService.Reset(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 今日目标进度
// @Description 今日时长对比目标，百分比封顶 100；未设置目标时 hasGoal 为 false
// @Tags 目标
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goal/progress [get]
func (c *GoalController) Progress(ctx *gin.Context) {
	util.Success(ctx, c.GoalService.Progress())
}
