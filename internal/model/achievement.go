package model

// BadgeID 徽章标识，新增徽章只需要扩展 Catalog，不需要改结构
type BadgeID string

const (
	BadgeFirstEntry  BadgeID = "firstEntry"
	BadgeStreak3     BadgeID = "streak3"
	BadgeStreak7     BadgeID = "streak7"
	BadgeStreak30    BadgeID = "streak30"
	BadgeHours10     BadgeID = "hours10"
	BadgeHours50     BadgeID = "hours50"
	BadgeHours100    BadgeID = "hours100"
	BadgePerfectWeek BadgeID = "perfectWeek"
	BadgeEarlyBird   BadgeID = "earlyBird"
	BadgeNightOwl    BadgeID = "nightOwl"
)

// BadgeDefinition 徽章的静态描述信息
type BadgeDefinition struct {
	ID          BadgeID `json:"id"`
	Icon        string  `json:"icon"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Requirement string  `json:"requirement"`
}

// BadgeCatalog 固定徽章目录，顺序即展示顺序
var BadgeCatalog = []BadgeDefinition{
	{BadgeFirstEntry, "🎯", "First Step", "Complete your first study session", "Log 1 study entry"},
	{BadgeStreak3, "🔥", "3-Day Streak", "Study for 3 consecutive days", "Study 3 days in a row"},
	{BadgeStreak7, "⚡", "Week Warrior", "Study for 7 consecutive days", "Study 7 days in a row"},
	{BadgeStreak30, "💎", "Month Master", "Study for 30 consecutive days", "Study 30 days in a row"},
	{BadgeHours10, "📚", "Study Starter", "Complete 10 total hours of study", "Study for 10 hours total"},
	{BadgeHours50, "🎓", "Knowledge Seeker", "Complete 50 total hours of study", "Study for 50 hours total"},
	{BadgeHours100, "🏆", "Study Master", "Complete 100 total hours of study", "Study for 100 hours total"},
	{BadgePerfectWeek, "⭐", "Perfect Week", "Study every day for a complete week", "Study 7 consecutive days"},
	{BadgeEarlyBird, "🌅", "Early Bird", "Study before 8:00 AM", "Log a study session between 05:00-07:59"},
	{BadgeNightOwl, "🦉", "Night Owl", "Study after 10:00 PM or before 5:00 AM", "Log a study session between 22:00-04:59"},
}

// AchievementSet 徽章 -> 是否已解锁。单向状态机：正常运行中 true 永不回退
type AchievementSet map[BadgeID]bool

// NewAchievementSet 返回全部未解锁的初始状态
func NewAchievementSet() AchievementSet {
	set := make(AchievementSet, len(BadgeCatalog))
	for _, def := range BadgeCatalog {
		set[def.ID] = false
	}
	return set
}

// EarnedCount 已解锁数量
func (s AchievementSet) EarnedCount() int {
	count := 0
	for _, earned := range s {
		if earned {
			count++
		}
	}
	return count
}
