package controller

import (
	"errors"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	LogService   *service.LogService
	StatsService *service.StatsService
}

func NewLogController(logService *service.LogService, statsService *service.StatsService) *LogController {
	return &LogController{LogService: logService, StatsService: statsService}
}

// @Summary 添加学习记录
// @Description 校验后追加一条学习记录，校验失败不修改任何状态
// @Tags 学习日志
// @Accept json
// @Produce json
// @Param entry body service.AppendLogRequest true "学习记录"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/logs [post]
func (c *LogController) Create(ctx *gin.Context) {
	var req service.AppendLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	entry, err := c.LogService.Append(ctx.Request.Context(), req)
	if err != nil {
		if util.IsValidation(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, entry)
}

// @Summary 查询学习记录
// @Description 支持搜索、科目、日期范围筛选，条件之间为 AND
// @Tags 学习日志
// @Produce json
// @Param search query string false "搜索词（科目或备注）"
// @Param subject query string false "科目展示名"
// @Param from query string false "起始日期 YYYY-MM-DD"
// @Param to query string false "截止日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/logs [get]
func (c *LogController) List(ctx *gin.Context) {
	var filter model.LogFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, "invalid filter parameters")
		return
	}

	util.Success(ctx, c.StatsService.Filter(filter))
}

// @Summary 删除学习记录
// @Tags 学习日志
// @Produce json
// @Param id path string true "记录 id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/logs/{id} [delete]
func (c *LogController) Delete(ctx *gin.Context) {
	err := c.LogService.RemoveByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 清空全部学习记录
// @Description 只清空日志集合，已解锁的徽章保留
// @Tags 学习日志
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/logs [delete]
func (c *LogController) Clear(ctx *gin.Context) {
	if err := c.LogService.Clear(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 科目列表
// @Description 去重排序后的科目展示名，用于筛选下拉框
// @Tags 学习日志
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/logs/subjects [get]
func (c *LogController) Subjects(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Subjects())
}
