package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"study_tracker_backend/internal/model"
)

// recentDateLimit 时间序列图只保留最近 30 个有记录的日期
const recentDateLimit = 30

// StatsService 派生统计引擎：全部为对快照的纯计算，不缓存中间状态
type StatsService struct {
	Log    *LogService
	Streak *StreakService
	Now    func() time.Time
}

func NewStatsService(logService *LogService, streak *StreakService) *StatsService {
	return &StatsService{Log: logService, Streak: streak, Now: time.Now}
}

// Summary 总时长、平均时长、平均成绩、学得最多/最少的科目
func (s *StatsService) Summary() model.Summary {
	entries := s.Log.Snapshot()
	summary := model.Summary{
		EntryCount:   len(entries),
		MostStudied:  "-",
		LeastStudied: "-",
	}
	if len(entries) == 0 {
		return summary
	}

	var gradeTotal float64
	gradeCount := 0
	for _, entry := range entries {
		summary.TotalHours += entry.Hours
		if entry.Grade != nil {
			gradeTotal += *entry.Grade
			gradeCount++
		}
	}
	summary.AverageHours = summary.TotalHours / float64(len(entries))
	if gradeCount > 0 {
		avg := gradeTotal / float64(gradeCount)
		summary.AverageGrade = &avg
	}

	// 并列时保留最先出现的科目
	subjects := s.SubjectTotals()
	most, least := subjects[0], subjects[0]
	for _, subject := range subjects[1:] {
		if subject.Hours > most.Hours {
			most = subject
		}
		if subject.Hours < least.Hours {
			least = subject
		}
	}
	summary.MostStudied = most.Subject
	summary.LeastStudied = least.Subject
	return summary
}

// SubjectTotals 科目 -> 累计时长，按科目首次出现顺序
func (s *StatsService) SubjectTotals() []model.SubjectHours {
	totals := make(map[string]float64)
	var order []string
	for _, entry := range s.Log.Snapshot() {
		if _, seen := totals[entry.DisplaySubject]; !seen {
			order = append(order, entry.DisplaySubject)
		}
		totals[entry.DisplaySubject] += entry.Hours
	}

	result := make([]model.SubjectHours, 0, len(order))
	for _, subject := range order {
		result = append(result, model.SubjectHours{Subject: subject, Hours: totals[subject]})
	}
	return result
}

// Daily 日期 -> 累计时长，升序，只取最近 30 个不同日期
func (s *StatsService) Daily() []model.DailyHours {
	totals := make(map[string]float64)
	for _, entry := range s.Log.Snapshot() {
		totals[entry.Date] += entry.Hours
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > recentDateLimit {
		dates = dates[len(dates)-recentDateLimit:]
	}

	result := make([]model.DailyHours, 0, len(dates))
	for _, date := range dates {
		result = append(result, model.DailyHours{Date: date, Hours: totals[date]})
	}
	return result
}

// TimeOfDay 按创建时间的本地小时把时长分进四个桶
func (s *StatsService) TimeOfDay() model.TimeOfDayStats {
	var stats model.TimeOfDayStats
	for _, entry := range s.Log.Snapshot() {
		hour := entry.CreatedAt.Local().Hour()
		switch {
		case hour >= 5 && hour < 12:
			stats.Morning += entry.Hours
		case hour >= 12 && hour < 18:
			stats.Afternoon += entry.Hours
		case hour >= 18 && hour < 22:
			stats.Evening += entry.Hours
		default:
			stats.Night += entry.Hours
		}
	}
	return stats
}

// Filter 条件之间 AND 组合，缺省条件匹配所有记录
func (s *StatsService) Filter(filter model.LogFilter) []model.LogEntry {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	result := []model.LogEntry{}
	for _, entry := range s.Log.Snapshot() {
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.DisplaySubject), search) &&
			!strings.Contains(strings.ToLower(entry.Notes), search) {
			continue
		}
		if filter.Subject != "" && entry.DisplaySubject != filter.Subject {
			continue
		}
		// 定宽 ISO 日期，字典序比较即日期比较
		if filter.DateFrom != "" && entry.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && entry.Date > filter.DateTo {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// Subjects 去重后的科目展示名，排序后用于筛选下拉框
func (s *StatsService) Subjects() []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, entry := range s.Log.Snapshot() {
		if !seen[entry.DisplaySubject] {
			seen[entry.DisplaySubject] = true
			subjects = append(subjects, entry.DisplaySubject)
		}
	}
	sort.Strings(subjects)
	return subjects
}

// TodayHours 今天（学习日期等于今天）的累计时长
func (s *StatsService) TodayHours() float64 {
	today := s.Now().Format(model.DateLayout)
	var total float64
	for _, entry := range s.Log.Snapshot() {
		if entry.Date == today {
			total += entry.Hours
		}
	}
	return total
}

// Analytics 高级分析：总览 + 时段分布 + 科目明细
func (s *StatsService) Analytics() model.AnalyticsReport {
	entries := s.Log.Snapshot()

	type subjectAccum struct {
		hours      float64
		sessions   int
		gradeSum   float64
		gradeCount int
	}
	accum := make(map[string]*subjectAccum)
	var order []string
	for _, entry := range entries {
		a, seen := accum[entry.DisplaySubject]
		if !seen {
			a = &subjectAccum{}
			accum[entry.DisplaySubject] = a
			order = append(order, entry.DisplaySubject)
		}
		a.hours += entry.Hours
		a.sessions++
		if entry.Grade != nil {
			a.gradeSum += *entry.Grade
			a.gradeCount++
		}
	}

	subjects := make([]model.SubjectBreakdown, 0, len(order))
	for _, subject := range order {
		a := accum[subject]
		breakdown := model.SubjectBreakdown{
			Subject:  subject,
			Hours:    a.hours,
			Sessions: a.sessions,
		}
		if a.gradeCount > 0 {
			avg := a.gradeSum / float64(a.gradeCount)
			breakdown.AverageGrade = &avg
		}
		subjects = append(subjects, breakdown)
	}

	return model.AnalyticsReport{
		Summary:       s.Summary(),
		CurrentStreak: s.Streak.CurrentStreak(),
		TimeOfDay:     s.TimeOfDay(),
		Subjects:      subjects,
	}
}

// ExportCSV 固定列序 Date,Subject,Hours,Grade,Notes；
// 备注整体加双引号且内部双引号翻倍，成绩缺失时留空
func (s *StatsService) ExportCSV() ([]byte, string) {
	var b strings.Builder
	b.WriteString("Date,Subject,Hours,Grade,Notes\n")

	for _, entry := range s.Log.Snapshot() {
		grade := ""
		if entry.Grade != nil {
			grade = strconv.FormatFloat(*entry.Grade, 'f', -1, 64)
		}
		notes := strings.ReplaceAll(entry.Notes, `"`, `""`)
		fmt.Fprintf(&b, "%s,%s,%s,%s,\"%s\"\n",
			entry.Date,
			entry.DisplaySubject,
			strconv.FormatFloat(entry.Hours, 'f', -1, 64),
			grade,
			notes,
		)
	}

	filename := fmt.Sprintf("study-logs-%s.csv", s.Now().Format(model.DateLayout))
	return []byte(b.String()), filename
}
