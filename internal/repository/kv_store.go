package repository

import (
	"context"
	"errors"
)

// 持久化键名，与浏览器版 localStorage 的键保持一致
const (
	KeyStudyLogs    = "studyLogs"
	KeyStudyGoal    = "studyGoal"
	KeyAchievements = "achievements"
	KeyTimerStats   = "timerStats"
	KeyTheme        = "theme"
	KeyReminders    = "remindersEnabled"
)

// AllKeys 全量擦除时遍历的键集合
var AllKeys = []string{
	KeyStudyLogs,
	KeyStudyGoal,
	KeyAchievements,
	KeyTimerStats,
	KeyTheme,
	KeyReminders,
}

// ErrKeyNotFound 键不存在时由各实现统一返回
var ErrKeyNotFound = errors.New("key not found")

// KVStore 持久化端口：字符串键 + JSON 序列化的值
// 核心组件只依赖这个接口，不感知具体存储介质
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Erase(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
