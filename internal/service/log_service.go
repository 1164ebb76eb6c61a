package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppendLogRequest 添加日志的入参
type AppendLogRequest struct {
	Date    string   `json:"date"`
	Subject string   `json:"subject"`
	Hours   float64  `json:"hours"`
	Grade   *float64 `json:"grade"`
	Notes   string   `json:"notes"`
}

// LogService 日志集合的唯一持有者：追加、按 id 删除、清空、快照
// 集合按插入顺序保存（即录入顺序，不按学习日期排序），每次变更后整体写回
type LogService struct {
	Repo *repository.LogRepository
	Now  func() time.Time

	mu       sync.Mutex
	entries  []model.LogEntry
	onMutate func()
	onAppend func()
}

func NewLogService(repo *repository.LogRepository) *LogService {
	return &LogService{
		Repo:    repo,
		Now:     time.Now,
		entries: []model.LogEntry{},
	}
}

// SetOnMutate 注册变更回调（update-all 评估的调度入口）
func (s *LogService) SetOnMutate(fn func()) {
	s.onMutate = fn
}

// SetOnAppend 注册仅在成功追加后触发的回调，删除和清空不会触发
func (s *LogService) SetOnAppend(fn func()) {
	s.onAppend = fn
}

// Load 启动时恢复集合并迁移旧格式记录：
// 缺 id 的补生成，缺成绩的保持 null，缺备注的补空串，缺创建时间的取当前时间
func (s *LogService) Load(ctx context.Context) error {
	entries, err := s.Repo.Load(ctx)
	if err != nil {
		return err
	}

	migrated := false
	now := s.Now()
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
			migrated = true
		}
		if entries[i].CreatedAt.IsZero() {
			entries[i].CreatedAt = now
			migrated = true
		}
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	if migrated {
		if err := s.Repo.Save(ctx, entries); err != nil {
			logger.Log.Warn("failed to persist migrated logs", zap.Error(err))
		}
	}
	return nil
}

// Append 校验通过后追加一条记录并持久化；任何校验失败都不触碰状态
func (s *LogService) Append(ctx context.Context, req AppendLogRequest) (model.LogEntry, error) {
	if strings.TrimSpace(req.Date) == "" {
		return model.LogEntry{}, util.ErrEmptyDate
	}
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return model.LogEntry{}, util.ErrInvalidDate
	}
	subjectKey, displaySubject := model.NormalizeSubject(req.Subject)
	if subjectKey == "" {
		return model.LogEntry{}, util.ErrEmptySubject
	}
	if req.Hours < 0 || req.Hours > 24 {
		return model.LogEntry{}, util.ErrInvalidHours
	}

	entry := model.LogEntry{
		ID:             uuid.NewString(),
		Date:           req.Date,
		Subject:        subjectKey,
		DisplaySubject: displaySubject,
		Hours:          req.Hours,
		Grade:          req.Grade,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      s.Now(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	snapshot := append([]model.LogEntry(nil), s.entries...)
	s.mu.Unlock()

	if err := s.Repo.Save(ctx, snapshot); err != nil {
		// 写失败则回滚内存状态，避免半提交
		s.removeLocal(entry.ID)
		return model.LogEntry{}, err
	}

	if s.onAppend != nil {
		s.onAppend()
	}
	s.notifyMutate()
	return entry, nil
}

// RemoveByID 删除指定记录；id 不存在时返回显式错误且不修改任何状态
func (s *LogService) RemoveByID(ctx context.Context, id string) error {
	s.mu.Lock()
	index := -1
	for i := range s.entries {
		if s.entries[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return util.ErrEntryNotFound
	}
	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	snapshot := append([]model.LogEntry(nil), s.entries...)
	s.mu.Unlock()

	if err := s.Repo.Save(ctx, snapshot); err != nil {
		s.insertLocal(index, removed)
		return err
	}

	s.notifyMutate()
	return nil
}

// Clear 清空集合并擦除持久化状态（徽章不受影响）
func (s *LogService) Clear(ctx context.Context) error {
	s.mu.Lock()
	previous := s.entries
	s.entries = []model.LogEntry{}
	s.mu.Unlock()

	if err := s.Repo.Erase(ctx); err != nil {
		s.mu.Lock()
		s.entries = previous
		s.mu.Unlock()
		return err
	}

	s.notifyMutate()
	return nil
}

// Snapshot 返回当前集合的只读副本，所有派生计算都从这里出发
func (s *LogService) Snapshot() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.LogEntry(nil), s.entries...)
}

func (s *LogService) removeLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *LogService) insertLocal(index int, entry model.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index > len(s.entries) {
		index = len(s.entries)
	}
	s.entries = append(s.entries[:index], append([]model.LogEntry{entry}, s.entries[index:]...)...)
}

func (s *LogService) notifyMutate() {
	if s.onMutate != nil {
		s.onMutate()
	}
}
