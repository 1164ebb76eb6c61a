package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStreakService(t *testing.T) (*StreakService, *LogService) {
	t.Helper()
	logSvc := newTestLogService(t)
	streak := NewStreakService(logSvc)
	return streak, logSvc
}

func TestCurrentStreak_EmptyCollection(t *testing.T) {
	streak, _ := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	assert.Equal(t, 0, streak.CurrentStreak())
}

func TestCurrentStreak_ConsecutiveDaysEndingToday(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-28", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})

	assert.Equal(t, 3, streak.CurrentStreak())
}

func TestCurrentStreak_ZeroWithoutTodayEntry(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	// an unbroken run that ended yesterday does not count
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-27", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-28", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 1})

	assert.Equal(t, 0, streak.CurrentStreak())
}

func TestCurrentStreak_GapBreaksTheRun(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-26", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-27", Subject: "math", Hours: 1})
	// 28th missing
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})

	assert.Equal(t, 2, streak.CurrentStreak())
}

func TestCurrentStreak_MultipleEntriesPerDayCountOnce(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-29", Subject: "physics", Hours: 2})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "math", Hours: 1})
	mustAppend(t, logSvc, AppendLogRequest{Date: "2026-08-30", Subject: "physics", Hours: 2})

	assert.Equal(t, 2, streak.CurrentStreak())
}

func TestPerfectWeek_SevenDaysEndingToday(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	for _, date := range []string{
		"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27",
		"2026-08-28", "2026-08-29", "2026-08-30",
	} {
		mustAppend(t, logSvc, AppendLogRequest{Date: date, Subject: "math", Hours: 1})
	}

	assert.True(t, streak.PerfectWeek())
}

func TestPerfectWeek_MissingDayFails(t *testing.T) {
	streak, logSvc := newTestStreakService(t)
	streak.Now = fixedClock("2026-08-30 12:00")

	for _, date := range []string{
		"2026-08-24", "2026-08-25", "2026-08-26",
		"2026-08-28", "2026-08-29", "2026-08-30", // 27th missing
	} {
		mustAppend(t, logSvc, AppendLogRequest{Date: date, Subject: "math", Hours: 1})
	}

	assert.False(t, streak.PerfectWeek())
}
