package service

import (
	"sort"
	"time"

	"study_tracker_backend/internal/model"
)

// StreakService 基于去重后的学习日期集合计算连续天数
// 同一天多条记录只算一天
type StreakService struct {
	Log *LogService
	Now func() time.Time
}

func NewStreakService(logService *LogService) *StreakService {
	return &StreakService{Log: logService, Now: time.Now}
}

// CurrentStreak 以今天为锚点向前数连续学习日。今天没有记录即为 0，
// 首个超过一天的间隔终止计数
func (s *StreakService) CurrentStreak() int {
	dates := distinctDatesDesc(s.Log.Snapshot())
	if len(dates) == 0 {
		return 0
	}

	today := s.Now().Format(model.DateLayout)
	if dates[0] != today {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		current, err1 := time.Parse(model.DateLayout, dates[i-1])
		previous, err2 := time.Parse(model.DateLayout, dates[i])
		if err1 != nil || err2 != nil {
			break
		}
		if int(current.Sub(previous).Hours()/24) == 1 {
			streak++
		} else {
			break
		}
	}
	return streak
}

// PerfectWeek 截止今天（含）的 7 个自然日每天都至少有一条记录
func (s *StreakService) PerfectWeek() bool {
	logged := make(map[string]bool)
	for _, entry := range s.Log.Snapshot() {
		logged[entry.Date] = true
	}

	today := s.Now()
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(model.DateLayout)
		if !logged[day] {
			return false
		}
	}
	return true
}

func (s *StreakService) Info() model.StreakInfo {
	return model.StreakInfo{
		CurrentStreak: s.CurrentStreak(),
		PerfectWeek:   s.PerfectWeek(),
	}
}

func distinctDatesDesc(entries []model.LogEntry) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, entry := range entries {
		if !seen[entry.Date] {
			seen[entry.Date] = true
			dates = append(dates, entry.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
