package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	BackupService *service.BackupService
}

func NewBackupController(backupService *service.BackupService) *BackupController {
	return &BackupController{BackupService: backupService}
}

// @Summary 导出全量快照
// @Description 日志、目标、徽章、专注统计的完整 JSON 快照
// @Tags 备份
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/backup [get]
func (c *BackupController) Snapshot(ctx *gin.Context) {
	util.Success(ctx, c.BackupService.Snapshot())
}

// @Summary 上传快照到对象存储
// @Tags 备份
// @Produce json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/backup [post]
func (c *BackupController) Upload(ctx *gin.Context) {
	if !c.BackupService.RemoteEnabled() {
		util.BadRequest(ctx, "remote backup is not configured")
		return
	}

	objectName, err := c.BackupService.Upload(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"object": objectName})
}
