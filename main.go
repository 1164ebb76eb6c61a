package main

import (
	"flag"
	"log"
	"path/filepath"

	"study_tracker_backend/internal/app"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/pkg/configwatcher"
)

// @title 学习记录服务 API
// @version 2.0
// @description 个人学习日志、统计、连续打卡、目标、徽章与番茄钟后端
// @BasePath /api
func main() {
	configDir := flag.String("config", "./configs", "配置目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	// 配置热更新：日志级别与番茄钟时长无需重启即可调整
	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), func(next *config.Config) {
		application.ApplyConfig(next)
	})

	application.Run()
}
