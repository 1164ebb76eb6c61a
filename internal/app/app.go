package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/controller"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/pkg/database"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/monitoring"
	"study_tracker_backend/pkg/security"
	"study_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// refreshDelay 日志变更后 update-all（成就重评估）的防抖窗口
const refreshDelay = 300 * time.Millisecond

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Store    repository.KVStore
	services *services
	refresh  *service.Debouncer
}

type repositories struct {
	log         *repository.LogRepository
	goal        *repository.GoalRepository
	achievement *repository.AchievementRepository
	timer       *repository.TimerRepository
	preference  *repository.PreferenceRepository
}

type services struct {
	log         *service.LogService
	streak      *service.StreakService
	stats       *service.StatsService
	goal        *service.GoalService
	achievement *service.AchievementService
	timer       *service.TimerService
	dashboard   *service.DashboardService
	backup      *service.BackupService
}

type controllers struct {
	log         *controller.LogController
	stats       *controller.StatsController
	goal        *controller.GoalController
	achievement *controller.AchievementController
	timer       *controller.TimerController
	dashboard   *controller.DashboardController
	backup      *controller.BackupController
	preference  *controller.PreferenceController
	data        *controller.DataController
	health      *controller.HealthController
}

// initStore 按配置选择持久化端口实现：本地文件 / Redis / MySQL
func initStore(cfg *config.Config) (repository.KVStore, error) {
	switch cfg.Storage.Type {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStore(rdb), nil
	case "mysql":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	case "file":
		return repository.NewFileStore(cfg.Storage.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

func (a *App) initRepositories(store repository.KVStore) *repositories {
	return &repositories{
		log:         repository.NewLogRepository(store),
		goal:        repository.NewGoalRepository(store),
		achievement: repository.NewAchievementRepository(store),
		timer:       repository.NewTimerRepository(store),
		preference:  repository.NewPreferenceRepository(store),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.log = service.NewLogService(repos.log)
	s.streak = service.NewStreakService(s.log)
	s.stats = service.NewStatsService(s.log, s.streak)
	s.goal = service.NewGoalService(repos.goal, s.stats)
	s.achievement = service.NewAchievementService(repos.achievement, s.log, s.streak)
	s.timer = service.NewTimerService(repos.timer, model.TimerDurations{
		FocusMinutes:      cfg.Timer.FocusMinutes,
		ShortBreakMinutes: cfg.Timer.ShortBreakMinutes,
		LongBreakMinutes:  cfg.Timer.LongBreakMinutes,
	})
	s.dashboard = service.NewDashboardService(s.stats, s.streak, s.goal, s.achievement, s.timer)
	s.backup = service.NewBackupService(&cfg.Backup, s.log, s.goal, s.achievement, s.timer)

	// 日志变更 -> 防抖的 update-all；专注时段完成 -> 立即重评估
	s.log.SetOnAppend(func() {
		monitoring.LogEntriesTotal.Inc()
	})
	s.log.SetOnMutate(func() {
		a.refresh.Schedule(func() {
			unlocked := s.achievement.Evaluate(context.Background())
			monitoring.BadgesUnlockedTotal.Add(float64(len(unlocked)))
		})
	})
	s.timer.SetOnFocusComplete(func() {
		unlocked := s.achievement.Evaluate(context.Background())
		monitoring.BadgesUnlockedTotal.Add(float64(len(unlocked)))
	})

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		log:         controller.NewLogController(s.log, s.stats),
		stats:       controller.NewStatsController(s.stats, s.streak),
		goal:        controller.NewGoalController(s.goal),
		achievement: controller.NewAchievementController(s.achievement, a.refresh),
		timer:       controller.NewTimerController(s.timer),
		dashboard:   controller.NewDashboardController(s.dashboard, a.refresh),
		backup:      controller.NewBackupController(s.backup),
		preference:  controller.NewPreferenceController(repos.preference),
		data:        controller.NewDataController(a.Store, s.log, s.goal, s.achievement, s.timer, a.refresh),
		health:      controller.NewHealthController(a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	store, err := initStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		Store:   store,
		refresh: service.NewDebouncer(refreshDelay),
	}

	repos := app.initRepositories(store)
	services := app.initServices(repos, cfg)
	app.services = services

	// 启动时恢复持久化状态，读失败或损坏数据都降级为默认值
	ctx := context.Background()
	if err := services.log.Load(ctx); err != nil {
		logger.Log.Warn("Failed to load study logs, starting empty", zap.Error(err))
	}
	if err := services.goal.Load(ctx); err != nil {
		logger.Log.Warn("Failed to load daily goal, starting unset", zap.Error(err))
	}
	if err := services.achievement.Load(ctx); err != nil {
		logger.Log.Warn("Failed to load achievements, starting fresh", zap.Error(err))
	}
	if err := services.timer.Load(ctx); err != nil {
		logger.Log.Warn("Failed to load timer stats, starting at zero", zap.Error(err))
	}

	// 恢复后立即跑一遍解锁谓词，旧数据达标的徽章直接点亮
	services.achievement.Evaluate(ctx)

	controllers := app.initControllers(services, repos)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("study-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

// ApplyConfig 配置热更新回调：日志级别和定时器时长即时生效
func (a *App) ApplyConfig(cfg *config.Config) {
	logger.SetMode(cfg.Server.Mode)

	err := a.services.timer.Configure(model.TimerDurations{
		FocusMinutes:      cfg.Timer.FocusMinutes,
		ShortBreakMinutes: cfg.Timer.ShortBreakMinutes,
		LongBreakMinutes:  cfg.Timer.LongBreakMinutes,
	})
	if err != nil {
		logger.Log.Warn("Ignoring invalid timer durations from reloaded config", zap.Error(err))
		return
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 停表、冲掉挂起的评估，再关闭存储
	a.services.timer.Pause()
	a.refresh.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Store.Close(); err != nil {
		logger.Log.Error("Failed to close storage", zap.Error(err))
	}

	log.Println("Server exiting")
}
