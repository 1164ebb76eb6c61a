package service

import (
	"strings"
	"testing"
	"time"

	"study_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsService(t *testing.T) (*StatsService, *LogService) {
	t.Helper()
	logSvc := newTestLogService(t)
	streak := NewStreakService(logSvc)
	stats := NewStatsService(logSvc, streak)
	return stats, logSvc
}

// --- Summary ---

func TestSummary_EmptyCollection(t *testing.T) {
	stats, _ := newTestStatsService(t)

	summary := stats.Summary()
	assert.Equal(t, 0, summary.EntryCount)
	assert.Equal(t, 0.0, summary.TotalHours)
	assert.Equal(t, 0.0, summary.AverageHours)
	assert.Nil(t, summary.AverageGrade)
	assert.Equal(t, "-", summary.MostStudied)
	assert.Equal(t, "-", summary.LeastStudied)
}

func TestSummary_Aggregates(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-28", Subject: "math", Hours: 3, Grade: gradePtr(80)})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "physics", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 2, Grade: gradePtr(90)})

	summary := stats.Summary()
	assert.Equal(t, 3, summary.EntryCount)
	assert.Equal(t, 6.0, summary.TotalHours)
	assert.Equal(t, 2.0, summary.AverageHours)
	require.NotNil(t, summary.AverageGrade, "graded entries should yield an average")
	assert.Equal(t, 85.0, *summary.AverageGrade, "ungraded entries stay out of the grade average")
	assert.Equal(t, "Math", summary.MostStudied)
	assert.Equal(t, "Physics", summary.LeastStudied)
}

func TestSummary_NoGradesMeansNoAverage(t *testing.T) {
	stats, logSvc := newTestStatsService(t)
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})

	assert.Nil(t, stats.Summary().AverageGrade)
}

func TestSummary_TieKeepsFirstSubject(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 2})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 2})

	summary := stats.Summary()
	assert.Equal(t, "Math", summary.MostStudied, "ties resolve to the first subject seen")
	assert.Equal(t, "Math", summary.LeastStudied)
}

// --- Subject and daily grouping ---

func TestSubjectTotals_InsertionOrder(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "Math", Hours: 2})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "MATH", Hours: 3})

	totals := stats.SubjectTotals()
	require.Len(t, totals, 2, "case variants of a subject should collapse")
	assert.Equal(t, model.SubjectHours{Subject: "Physics", Hours: 1}, totals[0])
	assert.Equal(t, model.SubjectHours{Subject: "Math", Hours: 5}, totals[1])
}

func TestDaily_SortedAscendingAndSummed(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 2})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-28", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 3})

	daily := stats.Daily()
	require.Len(t, daily, 2)
	assert.Equal(t, model.DailyHours{Date: "2026-08-28", Hours: 1}, daily[0])
	assert.Equal(t, model.DailyHours{Date: "2026-08-30", Hours: 5}, daily[1])
}

func TestDaily_KeepsOnlyRecentThirtyDates(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		date := base.AddDate(0, 0, i).Format(model.DateLayout)
		mustAppend(t, logSvc, AppendLogRequest{Date: date, Subject: "math", Hours: 1})
	}

	daily := stats.Daily()
	require.Len(t, daily, 30)
	assert.Equal(t, base.AddDate(0, 0, 5).Format(model.DateLayout), daily[0].Date, "oldest five dates drop off")
	assert.Equal(t, base.AddDate(0, 0, 34).Format(model.DateLayout), daily[29].Date)
}

// --- Filtering ---

func TestFilter_CombinesConditions(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-28", Subject: "math", Hours: 1, Notes: "algebra drills"})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 2, Notes: "calculus"})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "physics", Hours: 3, Notes: "optics"})

	// no conditions matches everything
	assert.Len(t, stats.Filter(model.LogFilter{}), 3)

	// search matches subject or notes, case-insensitively
	bySearch := stats.Filter(model.LogFilter{Search: "ALGEBRA"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "algebra drills", bySearch[0].Notes)

	bySubject := stats.Filter(model.LogFilter{Subject: "Math"})
	assert.Len(t, bySubject, 2)

	byRange := stats.Filter(model.LogFilter{DateFrom: "2026-08-29", DateTo: "2026-08-29"})
	assert.Len(t, byRange, 2)

	// conditions are ANDed
	combined := stats.Filter(model.LogFilter{Subject: "Math", DateFrom: "2026-08-29"})
	require.Len(t, combined, 1)
	assert.Equal(t, "calculus", combined[0].Notes)

	assert.Empty(t, stats.Filter(model.LogFilter{Search: "chemistry"}))
}

func TestSubjects_SortedDistinct(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "Physics", Hours: 1})

	assert.Equal(t, []string{"Math", "Physics"}, stats.Subjects())
}

// --- Today and time-of-day ---

func TestTodayHours_SumsOnlyToday(t *testing.T) {
	stats, logSvc := newTestStatsService(t)
	stats.Now = fixedClock("2026-08-30 12:00")

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 2})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 1.5})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 4})

	assert.Equal(t, 3.5, stats.TodayHours())
}

func TestTimeOfDay_BucketsByCreationHour(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	logSvc.Now = fixedClock("2026-08-30 06:30")
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	logSvc.Now = fixedClock("2026-08-30 14:00")
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 2})
	logSvc.Now = fixedClock("2026-08-30 19:00")
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 3})
	logSvc.Now = fixedClock("2026-08-30 23:00")
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 4})

	buckets := stats.TimeOfDay()
	assert.Equal(t, 1.0, buckets.Morning)
	assert.Equal(t, 2.0, buckets.Afternoon)
	assert.Equal(t, 3.0, buckets.Evening)
	assert.Equal(t, 4.0, buckets.Night)
}

// --- Analytics ---

func TestAnalytics_PerSubjectBreakdown(t *testing.T) {
	stats, logSvc := newTestStatsService(t)

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 2, Grade: gradePtr(70)})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1, Grade: gradePtr(90)})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 3})

	report := stats.Analytics()
	require.Len(t, report.Subjects, 2)

	math := report.Subjects[0]
	assert.Equal(t, "Math", math.Subject)
	assert.Equal(t, 3.0, math.Hours)
	assert.Equal(t, 2, math.Sessions)
	require.NotNil(t, math.AverageGrade)
	assert.Equal(t, 80.0, *math.AverageGrade)

	physics := report.Subjects[1]
	assert.Equal(t, 1, physics.Sessions)
	assert.Nil(t, physics.AverageGrade)
}

// --- CSV export ---

func TestExportCSV_FormatAndFilename(t *testing.T) {
	stats, logSvc := newTestStatsService(t)
	stats.Now = fixedClock("2026-08-30 12:00")

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 2.5, Grade: gradePtr(88), Notes: `said "done"`})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 1})

	data, filename := stats.ExportCSV()
	assert.Equal(t, "study-logs-2026-08-30.csv", filename)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Subject,Hours,Grade,Notes", lines[0])
	assert.Equal(t, `2026-08-29,Math,2.5,88,"said ""done"""`, lines[1], "embedded quotes double inside the quoted notes field")
	assert.Equal(t, `2026-08-30,Physics,1,,""`, lines[2], "missing grade leaves the column empty")
}

func TestExportCSV_EmptyCollection(t *testing.T) {
	stats, _ := newTestStatsService(t)

	data, _ := stats.ExportCSV()
	assert.Equal(t, "Date,Subject,Hours,Grade,Notes\n", string(data))
}
