package controller

import (
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DataController 全量数据擦除：这是唯一允许清掉已解锁徽章的路径
type DataController struct {
	Store              repository.KVStore
	LogService         *service.LogService
	GoalService        *service.GoalService
	AchievementService *service.AchievementService
	TimerService       *service.TimerService
	Refresh            *service.Debouncer
}

func NewDataController(
	store repository.KVStore,
	logService *service.LogService,
	goalService *service.GoalService,
	achievementService *service.AchievementService,
	timerService *service.TimerService,
	refresh *service.Debouncer,
) *DataController {
	return &DataController{
		Store:              store,
		LogService:         logService,
		GoalService:        goalService,
		AchievementService: achievementService,
		TimerService:       timerService,
		Refresh:            refresh,
	}
}

// @Summary 擦除全部数据
// @Description 清空日志、目标、徽章、专注统计与偏好，恢复到初始状态
// @Tags 备份
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/data [delete]
func (c *DataController) Wipe(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	if err := c.LogService.Clear(reqCtx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Clear 会调度一次延迟评估，评估落盘会把刚擦掉的徽章键写回来，
	// 在重置徽章之前必须丢弃它
	c.Refresh.Stop()

	if err := c.GoalService.Reset(reqCtx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := c.AchievementService.Reset(reqCtx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := c.TimerService.ResetStats(reqCtx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 偏好等剩余键一并擦除
	for _, key := range repository.AllKeys {
		if err := c.Store.Erase(reqCtx, key); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	util.Success(ctx, nil)
}
