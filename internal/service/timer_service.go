package service

import (
	"context"
	"sync"
	"time"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// TimerService 番茄钟状态机：Focus -> Short/LongBreak -> Focus
// 只有完成计数跨重启保留，倒计时和运行标志都是会话内状态
type TimerService struct {
	Repo *repository.TimerRepository

	mu        sync.Mutex
	phase     model.TimerPhase
	remaining int
	running   bool
	durations model.TimerDurations
	stats     model.TimerStats
	stopCh    chan struct{}

	// 专注时段完成后触发一次成就重评估
	onFocusComplete func()
}

func NewTimerService(repo *repository.TimerRepository, durations model.TimerDurations) *TimerService {
	return &TimerService{
		Repo:      repo,
		phase:     model.PhaseFocus,
		remaining: durations.FocusMinutes * 60,
		durations: durations,
	}
}

func (s *TimerService) SetOnFocusComplete(fn func()) {
	s.onFocusComplete = fn
}

// Load 启动时只恢复计数；倒计时总是从配置的专注时长重新开始
func (s *TimerService) Load(ctx context.Context) error {
	stats, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Configure 更新各阶段时长；未在运行时同时把倒计时重置到新的专注时长
func (s *TimerService) Configure(durations model.TimerDurations) error {
	if durations.FocusMinutes <= 0 || durations.ShortBreakMinutes <= 0 || durations.LongBreakMinutes <= 0 {
		return util.ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.durations = durations
	if !s.running {
		s.phase = model.PhaseFocus
		s.remaining = durations.FocusMinutes * 60
	}
	return nil
}

// Start 从当前剩余秒数开始以一秒粒度倒数；已在运行则为空操作
func (s *TimerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	go s.run(s.stopCh)
}

// Pause 暂停但不重置倒计时；未运行则为空操作
func (s *TimerService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Reset 确定性规则：无论当前处于哪个阶段，一律停止倒计时、
// 回到 Focus 阶段并装载配置的专注时长
func (s *TimerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.phase = model.PhaseFocus
	s.remaining = s.durations.FocusMinutes * 60
}

// State 当前完整视图
func (s *TimerService) State() model.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.TimerState{
		Phase:            s.phase,
		RemainingSeconds: s.remaining,
		Running:          s.running,
		TimerStats:       s.stats,
		Durations:        s.durations,
	}
}

func (s *TimerService) Stats() model.TimerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ResetStats 全量数据擦除专用
func (s *TimerService) ResetStats(ctx context.Context) error {
	if err := s.Repo.Erase(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.stats = model.TimerStats{}
	s.mu.Unlock()
	return nil
}

// Advance 模拟 n 次一秒滴答（测试与时钟驱动共用同一条路径）
func (s *TimerService) Advance(n int) {
	for i := 0; i < n; i++ {
		s.tick()
	}
}

func (s *TimerService) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if s.tick() {
				return
			}
		case <-stop:
			return
		}
	}
}

// tick 倒数一秒；归零时完成当前阶段。返回 true 表示倒计时已停止
func (s *TimerService) tick() bool {
	s.mu.Lock()
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return false
	}
	notify := s.completePhaseLocked()
	s.mu.Unlock()

	if notify && s.onFocusComplete != nil {
		s.onFocusComplete()
	}
	return true
}

// completePhaseLocked 阶段切换。离开 Focus 时累加计数并选择休息时长
// （每 4 个专注时段进入长休息）；离开休息时回到 Focus。
// 完成后停表，等待用户再次 Start。返回是否需要触发成就评估
func (s *TimerService) completePhaseLocked() bool {
	s.stopLocked()

	if s.phase == model.PhaseFocus {
		s.stats.CompletedSessions++
		s.stats.TotalFocusMinutes += s.durations.FocusMinutes

		if s.stats.CompletedSessions%model.SessionsPerLongBreak == 0 {
			s.phase = model.PhaseLongBreak
			s.remaining = s.durations.LongBreakMinutes * 60
		} else {
			s.phase = model.PhaseShortBreak
			s.remaining = s.durations.ShortBreakMinutes * 60
		}

		if err := s.Repo.Save(context.Background(), s.stats); err != nil {
			logger.Log.Error("failed to persist timer stats", zap.Error(err))
		}
		return true
	}

	s.phase = model.PhaseFocus
	s.remaining = s.durations.FocusMinutes * 60
	return false
}

func (s *TimerService) stopLocked() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	s.stopCh = nil
}
