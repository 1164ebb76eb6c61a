package repository

import (
	"context"
	"encoding/json"

	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// GoalRepository studyGoal 键的类型化读写，0 表示未设置
type GoalRepository struct {
	Store KVStore
}

func NewGoalRepository(store KVStore) *GoalRepository {
	return &GoalRepository{Store: store}
}

func (r *GoalRepository) Load(ctx context.Context) (float64, error) {
	data, err := r.Store.Load(ctx, KeyStudyGoal)
	if err == ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var goal float64
	if err := json.Unmarshal(data, &goal); err != nil {
		logger.Log.Warn("discarding corrupt daily goal", zap.Error(err))
		return 0, nil
	}
	return goal, nil
}

func (r *GoalRepository) Save(ctx context.Context, goal float64) error {
	data, err := json.Marshal(goal)
	if err != nil {
		return err
	}
	return r.Store.Save(ctx, KeyStudyGoal, data)
}

func (r *GoalRepository) Erase(ctx context.Context) error {
	return r.Store.Erase(ctx, KeyStudyGoal)
}
