package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/model"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BackupSnapshot 全量状态快照，导出与远端备份共用
type BackupSnapshot struct {
	Version      string               `json:"version"`
	ExportedAt   time.Time            `json:"exportedAt"`
	Logs         []model.LogEntry     `json:"logs"`
	Goal         float64              `json:"goal"`
	Achievements model.AchievementSet `json:"achievements"`
	TimerStats   model.TimerStats     `json:"timerStats"`
}

// BackupService 组装全量快照；配置了 MinIO 时支持上传到对象存储
type BackupService struct {
	Config      *config.BackupConfig
	Log         *LogService
	Goal        *GoalService
	Achievement *AchievementService
	Timer       *TimerService

	client *minio.Client
}

func NewBackupService(
	cfg *config.BackupConfig,
	logService *LogService,
	goal *GoalService,
	achievement *AchievementService,
	timer *TimerService,
) *BackupService {
	return &BackupService{
		Config:      cfg,
		Log:         logService,
		Goal:        goal,
		Achievement: achievement,
		Timer:       timer,
	}
}

func (s *BackupService) Snapshot() BackupSnapshot {
	return BackupSnapshot{
		Version:      "2.0.0",
		ExportedAt:   time.Now(),
		Logs:         s.Log.Snapshot(),
		Goal:         s.Goal.Goal(),
		Achievements: s.Achievement.Set(),
		TimerStats:   s.Timer.Stats(),
	}
}

// RemoteEnabled 是否配置了对象存储
func (s *BackupService) RemoteEnabled() bool {
	return s.Config != nil && s.Config.MinioEndpoint != "" && s.Config.MinioBucket != ""
}

// Upload 把快照以 JSON 对象写入 MinIO，返回对象名
func (s *BackupService) Upload(ctx context.Context) (string, error) {
	if !s.RemoteEnabled() {
		return "", fmt.Errorf("remote backup is not configured")
	}

	client, err := s.minioClient()
	if err != nil {
		return "", err
	}

	snapshot := s.Snapshot()
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("backups/study-tracker-%s.json", snapshot.ExportedAt.Format("20060102-150405"))
	_, err = client.PutObject(ctx, s.Config.MinioBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *BackupService) minioClient() (*minio.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	client, err := minio.New(s.Config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.Config.MinioAccessID, s.Config.MinioSecret, ""),
		Secure: s.Config.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}
