package model

// TimerPhase 番茄钟当前阶段
type TimerPhase string

const (
	PhaseFocus      TimerPhase = "focus"
	PhaseShortBreak TimerPhase = "short_break"
	PhaseLongBreak  TimerPhase = "long_break"
)

// 默认时长（分钟），可被配置与接口覆盖
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15

	// 每完成 4 个专注时段进入一次长休息
	SessionsPerLongBreak = 4
)

// TimerDurations 各阶段时长（整分钟），属于外部输入，不由状态机持有来源
type TimerDurations struct {
	FocusMinutes      int `json:"focusMinutes"`
	ShortBreakMinutes int `json:"shortBreakMinutes"`
	LongBreakMinutes  int `json:"longBreakMinutes"`
}

// TimerStats 跨重启保留的计数，倒计时本身不持久化
type TimerStats struct {
	CompletedSessions int `json:"completedSessions"`
	TotalFocusMinutes int `json:"totalFocusMinutes"`
}

// TimerState 对外暴露的完整定时器视图
type TimerState struct {
	Phase            TimerPhase `json:"phase"`
	RemainingSeconds int        `json:"remainingSeconds"`
	Running          bool       `json:"running"`
	TimerStats
	Durations TimerDurations `json:"durations"`
}
