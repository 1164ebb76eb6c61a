package service

import (
	"study_tracker_backend/internal/model"
)

// DashboardService 顶栏与个人页需要的聚合视图，一次计算取齐
type DashboardService struct {
	Stats       *StatsService
	Streak      *StreakService
	Goal        *GoalService
	Achievement *AchievementService
	Timer       *TimerService
}

func NewDashboardService(
	stats *StatsService,
	streak *StreakService,
	goal *GoalService,
	achievement *AchievementService,
	timer *TimerService,
) *DashboardService {
	return &DashboardService{
		Stats:       stats,
		Streak:      streak,
		Goal:        goal,
		Achievement: achievement,
		Timer:       timer,
	}
}

func (s *DashboardService) Dashboard() model.Dashboard {
	return model.Dashboard{
		Summary:       s.Stats.Summary(),
		CurrentStreak: s.Streak.CurrentStreak(),
		PerfectWeek:   s.Streak.PerfectWeek(),
		TodayHours:    s.Stats.TodayHours(),
		EarnedBadges:  s.Achievement.Set().EarnedCount(),
		TotalBadges:   len(model.BadgeCatalog),
		Goal:          s.Goal.Progress(),
		Timer:         s.Timer.Stats(),
	}
}
