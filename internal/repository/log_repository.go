package repository

import (
	"context"
	"encoding/json"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// LogRepository studyLogs 键的类型化读写
type LogRepository struct {
	Store KVStore
}

func NewLogRepository(store KVStore) *LogRepository {
	return &LogRepository{Store: store}
}

// Load 读取全部日志。键不存在或数据损坏时降级为空集合，不中断启动
func (r *LogRepository) Load(ctx context.Context) ([]model.LogEntry, error) {
	data, err := r.Store.Load(ctx, KeyStudyLogs)
	if err == ErrKeyNotFound {
		return []model.LogEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []model.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Log.Warn("discarding corrupt study logs", zap.Error(err))
		return []model.LogEntry{}, nil
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	return entries, nil
}

// Save 全量写回集合，每次变更后调用
func (r *LogRepository) Save(ctx context.Context, entries []model.LogEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.Store.Save(ctx, KeyStudyLogs, data)
}

func (r *LogRepository) Erase(ctx context.Context) error {
	return r.Store.Erase(ctx, KeyStudyLogs)
}
