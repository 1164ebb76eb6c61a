package repository

import (
	"context"
	"encoding/json"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// TimerRepository timerStats 键的类型化读写，只存计数，不存倒计时
type TimerRepository struct {
	Store KVStore
}

func NewTimerRepository(store KVStore) *TimerRepository {
	return &TimerRepository{Store: store}
}

func (r *TimerRepository) Load(ctx context.Context) (model.TimerStats, error) {
	data, err := r.Store.Load(ctx, KeyTimerStats)
	if err == ErrKeyNotFound {
		return model.TimerStats{}, nil
	}
	if err != nil {
		return model.TimerStats{}, err
	}

	var stats model.TimerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Log.Warn("discarding corrupt timer stats", zap.Error(err))
		return model.TimerStats{}, nil
	}
	if stats.CompletedSessions < 0 || stats.TotalFocusMinutes < 0 {
		return model.TimerStats{}, nil
	}
	return stats, nil
}

func (r *TimerRepository) Save(ctx context.Context, stats model.TimerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.Store.Save(ctx, KeyTimerStats, data)
}

func (r *TimerRepository) Erase(ctx context.Context) error {
	return r.Store.Erase(ctx, KeyTimerStats)
}
