package model

// Summary 汇总卡片数据
type Summary struct {
	EntryCount   int      `json:"entryCount"`
	TotalHours   float64  `json:"totalHours"`
	AverageHours float64  `json:"averageHours"` // 无记录时为 0
	AverageGrade *float64 `json:"averageGrade"` // 仅统计有成绩的记录，无成绩记录时为 null
	MostStudied  string   `json:"mostStudied"`  // 并列时取最先出现的科目
	LeastStudied string   `json:"leastStudied"`
}

// SubjectHours 某一科目的累计学习时长，保持首次出现顺序
type SubjectHours struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// DailyHours 某一天的累计学习时长，用于时间序列图
type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// TimeOfDayStats 按创建时间的本地小时分桶的学习时长
// Morning [5,12) Afternoon [12,18) Evening [18,22) Night 其余
type TimeOfDayStats struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}

// SubjectBreakdown 分析报告里单个科目的明细
type SubjectBreakdown struct {
	Subject      string   `json:"subject"`
	Hours        float64  `json:"hours"`
	Sessions     int      `json:"sessions"`
	AverageGrade *float64 `json:"averageGrade"`
}

// AnalyticsReport 高级分析视图
type AnalyticsReport struct {
	Summary       Summary            `json:"summary"`
	CurrentStreak int                `json:"currentStreak"`
	TimeOfDay     TimeOfDayStats     `json:"timeOfDay"`
	Subjects      []SubjectBreakdown `json:"subjects"`
}

// LogFilter 日志筛选条件，各条件之间为 AND，空条件匹配全部
type LogFilter struct {
	Search   string `form:"search"`  // 大小写不敏感的子串匹配（科目展示名或备注）
	Subject  string `form:"subject"` // 科目展示名精确匹配
	DateFrom string `form:"from"`    // 闭区间，定宽 ISO 日期可按字典序比较
	DateTo   string `form:"to"`
}

// GoalProgress 今日时长与每日目标的对比
type GoalProgress struct {
	HasGoal    bool    `json:"hasGoal"`
	GoalHours  float64 `json:"goalHours"`
	TodayHours float64 `json:"todayHours"`
	Percent    float64 `json:"percent"` // 封顶 100
	Achieved   bool    `json:"achieved"`
}

// StreakInfo 连续学习天数视图
type StreakInfo struct {
	CurrentStreak int  `json:"currentStreak"`
	PerfectWeek   bool `json:"perfectWeek"`
}

// Preferences UI 偏好，核心逻辑不依赖它们
type Preferences struct {
	Theme            string `json:"theme"`
	RemindersEnabled bool   `json:"remindersEnabled"`
}

// Dashboard 顶栏与个人页聚合视图，一次 update-all 计算完成
type Dashboard struct {
	Summary       Summary      `json:"summary"`
	CurrentStreak int          `json:"currentStreak"`
	PerfectWeek   bool         `json:"perfectWeek"`
	TodayHours    float64      `json:"todayHours"`
	EarnedBadges  int          `json:"earnedBadges"`
	TotalBadges   int          `json:"totalBadges"`
	Goal          GoalProgress `json:"goal"`
	Timer         TimerStats   `json:"timer"`
}
