package controller

import (
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PreferenceController UI 偏好（主题、提醒开关），核心逻辑不依赖它们
type PreferenceController struct {
	Repo *repository.PreferenceRepository
}

func NewPreferenceController(repo *repository.PreferenceRepository) *PreferenceController {
	return &PreferenceController{Repo: repo}
}

// @Summary 读取 UI 偏好
// @Tags 偏好
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/preferences [get]
func (c *PreferenceController) Get(ctx *gin.Context) {
	prefs, err := c.Repo.Load(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// @Summary 保存 UI 偏好
// @Tags 偏好
// @Accept json
// @Produce json
// @Param preferences body model.Preferences true "UI 偏好"
// @Success 200 {object} util.Response
// @Router /api/preferences [put]
func (c *PreferenceController) Update(ctx *gin.Context) {
	var prefs model.Preferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	if err := c.Repo.Save(ctx.Request.Context(), prefs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}
