package service

import (
	"context"
	"sync"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// AchievementService 单向解锁状态机：每个徽章由一个单调谓词驱动，
// 一旦解锁绝不被评估重置，只有全量擦除能清掉
type AchievementService struct {
	Repo   *repository.AchievementRepository
	Log    *LogService
	Streak *StreakService

	mu     sync.Mutex
	set    model.AchievementSet
	unread []model.BadgeID // 新解锁且尚未被客户端取走的徽章，每个只出现一次
}

func NewAchievementService(repo *repository.AchievementRepository, logService *LogService, streak *StreakService) *AchievementService {
	return &AchievementService{
		Repo:   repo,
		Log:    logService,
		Streak: streak,
		set:    model.NewAchievementSet(),
	}
}

func (s *AchievementService) Load(ctx context.Context) error {
	set, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

// Evaluate 对当前聚合状态跑一遍所有解锁谓词，返回本次新解锁的徽章。
// 评估后整个标志集落盘
func (s *AchievementService) Evaluate(ctx context.Context) []model.BadgeID {
	entries := s.Log.Snapshot()
	streak := s.Streak.CurrentStreak()

	var totalHours float64
	earlyBird, nightOwl := false, false
	for _, entry := range entries {
		totalHours += entry.Hours
		hour := entry.CreatedAt.Local().Hour()
		if hour >= 5 && hour < 8 {
			earlyBird = true
		}
		if hour >= 22 || hour < 5 {
			nightOwl = true
		}
	}

	conditions := map[model.BadgeID]bool{
		model.BadgeFirstEntry:  len(entries) >= 1,
		model.BadgeStreak3:     streak >= 3,
		model.BadgeStreak7:     streak >= 7,
		model.BadgeStreak30:    streak >= 30,
		model.BadgeHours10:     totalHours >= 10,
		model.BadgeHours50:     totalHours >= 50,
		model.BadgeHours100:    totalHours >= 100,
		model.BadgePerfectWeek: s.Streak.PerfectWeek(),
		model.BadgeEarlyBird:   earlyBird,
		model.BadgeNightOwl:    nightOwl,
	}

	s.mu.Lock()
	var unlocked []model.BadgeID
	for _, def := range model.BadgeCatalog {
		if !s.set[def.ID] && conditions[def.ID] {
			s.set[def.ID] = true
			unlocked = append(unlocked, def.ID)
		}
	}
	s.unread = append(s.unread, unlocked...)
	snapshot := make(model.AchievementSet, len(s.set))
	for id, earned := range s.set {
		snapshot[id] = earned
	}
	s.mu.Unlock()

	if err := s.Repo.Save(ctx, snapshot); err != nil {
		logger.Log.Error("failed to persist achievements", zap.Error(err))
	}

	for _, id := range unlocked {
		logger.Log.Info("achievement unlocked", zap.String("badge", string(id)))
	}
	return unlocked
}

// Set 当前标志集副本
func (s *AchievementService) Set() model.AchievementSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(model.AchievementSet, len(s.set))
	for id, earned := range s.set {
		snapshot[id] = earned
	}
	return snapshot
}

// DrainUnread 取走并清空未读解锁队列，保证每个徽章只被通知一次
func (s *AchievementService) DrainUnread() []model.BadgeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	unread := s.unread
	s.unread = nil
	if unread == nil {
		unread = []model.BadgeID{}
	}
	return unread
}

// Reset 全量数据擦除专用，正常评估永远不会走到这里
func (s *AchievementService) Reset(ctx context.Context) error {
	if err := s.Repo.Erase(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.set = model.NewAchievementSet()
	s.unread = nil
	s.mu.Unlock()
	return nil
}
