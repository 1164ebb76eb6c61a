package service

import (
	"context"
	"sync"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
)

// GoalService 每日目标：单个标量，0 表示未设置
type GoalService struct {
	Repo  *repository.GoalRepository
	Stats *StatsService

	mu   sync.Mutex
	goal float64
}

func NewGoalService(repo *repository.GoalRepository, stats *StatsService) *GoalService {
	return &GoalService{Repo: repo, Stats: stats}
}

func (s *GoalService) Load(ctx context.Context) error {
	goal, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.goal = goal
	s.mu.Unlock()
	return nil
}

// Set 仅接受正数，非法值不落盘也不改内存
func (s *GoalService) Set(ctx context.Context, goal float64) error {
	if goal <= 0 {
		return util.ErrInvalidGoal
	}
	if err := s.Repo.Save(ctx, goal); err != nil {
		return err
	}
	s.mu.Lock()
	s.goal = goal
	s.mu.Unlock()
	return nil
}

// Reset 清零并擦除持久化值
func (s *GoalService) Reset(ctx context.Context) error {
	if err := s.Repo.Erase(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.goal = 0
	s.mu.Unlock()
	return nil
}

func (s *GoalService) Goal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

// Progress 今日时长对比目标，百分比封顶 100；未设置目标时不计算比例
func (s *GoalService) Progress() model.GoalProgress {
	goal := s.Goal()
	progress := model.GoalProgress{
		GoalHours:  goal,
		TodayHours: s.Stats.TodayHours(),
	}
	if goal <= 0 {
		return progress
	}

	progress.HasGoal = true
	percent := progress.TodayHours / goal * 100
	if percent >= 100 {
		percent = 100
		progress.Achieved = true
	}
	progress.Percent = percent
	return progress
}
