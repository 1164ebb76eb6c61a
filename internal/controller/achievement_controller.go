package controller

import (
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	Refresh            *service.Debouncer
}

func NewAchievementController(achievementService *service.AchievementService, refresh *service.Debouncer) *AchievementController {
	return &AchievementController{AchievementService: achievementService, Refresh: refresh}
}

type badgeView struct {
	model.BadgeDefinition
	Earned bool `json:"earned"`
}

// @Summary 徽章目录与解锁状态
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) List(ctx *gin.Context) {
	// 读之前冲掉挂起的评估，保证看到最新已提交状态
	c.Refresh.Flush()

	set := c.AchievementService.Set()
	badges := make([]badgeView, 0, len(model.BadgeCatalog))
	for _, def := range model.BadgeCatalog {
		badges = append(badges, badgeView{BadgeDefinition: def, Earned: set[def.ID]})
	}

	util.Success(ctx, gin.H{
		"badges": badges,
		"earned": set.EarnedCount(),
		"total":  len(model.BadgeCatalog),
	})
}

// @Summary 取走新解锁的徽章
// @Description 每个新解锁的徽章只会出现在一次响应里，用于一次性通知
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements/unread [get]
func (c *AchievementController) Unread(ctx *gin.Context) {
	c.Refresh.Flush()
	util.Success(ctx, c.AchievementService.DrainUnread())
}
