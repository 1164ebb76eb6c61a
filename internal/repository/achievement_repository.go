package repository

import (
	"context"
	"encoding/json"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// AchievementRepository achievements 键的类型化读写
type AchievementRepository struct {
	Store KVStore
}

func NewAchievementRepository(store KVStore) *AchievementRepository {
	return &AchievementRepository{Store: store}
}

// Load 读取徽章状态。损坏数据整体替换为默认值，不做部分合并
func (r *AchievementRepository) Load(ctx context.Context) (model.AchievementSet, error) {
	data, err := r.Store.Load(ctx, KeyAchievements)
	if err == ErrKeyNotFound {
		return model.NewAchievementSet(), nil
	}
	if err != nil {
		return nil, err
	}

	var stored map[model.BadgeID]bool
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Log.Warn("discarding corrupt achievement set", zap.Error(err))
		return model.NewAchievementSet(), nil
	}

	// 以固定目录为准：未知键丢弃，缺失键补 false
	set := model.NewAchievementSet()
	for id := range set {
		if stored[id] {
			set[id] = true
		}
	}
	return set, nil
}

func (r *AchievementRepository) Save(ctx context.Context, set model.AchievementSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return r.Store.Save(ctx, KeyAchievements, data)
}

func (r *AchievementRepository) Erase(ctx context.Context) error {
	return r.Store.Erase(ctx, KeyAchievements)
}
