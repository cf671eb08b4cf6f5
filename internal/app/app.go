package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/controller"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/pkg/database"
	"skill_tracker_backend/pkg/logger"
	"skill_tracker_backend/pkg/monitoring"
	"skill_tracker_backend/pkg/security"
	"skill_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopTasks       context.CancelFunc
}

type repositories struct {
	user         *repository.UserRepository
	skill        *repository.SkillRepository
	progress     *repository.ProgressRepository
	goal         *repository.GoalRepository
	resource     *repository.ResourceRepository
	notification *repository.NotificationRepository
	achievement  *repository.AchievementRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	skill        *service.SkillService
	progress     *service.ProgressService
	goal         *service.GoalService
	resource     *service.ResourceService
	dashboard    *service.DashboardService
	chart        *service.ChartService
	achievement  *service.AchievementService
	notification *service.NotificationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	skill        *controller.SkillController
	progress     *controller.ProgressController
	goal         *controller.GoalController
	resource     *controller.ResourceController
	dashboard    *controller.DashboardController
	notification *controller.NotificationController
	achievement  *controller.AchievementController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，由配置文件监听器回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		skill:        repository.NewSkillRepository(db),
		progress:     repository.NewProgressRepository(db),
		goal:         repository.NewGoalRepository(db),
		resource:     repository.NewResourceRepository(db),
		notification: repository.NewNotificationRepository(db),
		achievement:  repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.progress, repos.goal)
	s.chart = service.NewChartService(repos.progress, rdb, cfg)
	s.achievement = service.NewAchievementService(repos.achievement, repos.progress, repos.goal, repos.notification)
	s.skill = service.NewSkillService(repos.skill, repos.progress, repos.goal, repos.resource)
	s.progress = service.NewProgressService(repos.progress, repos.skill, s.achievement, s.chart)
	s.goal = service.NewGoalService(repos.goal, repos.skill, s.achievement)
	s.resource = service.NewResourceService(repos.resource, repos.skill)
	s.dashboard = service.NewDashboardService(repos.skill, repos.progress, repos.goal)
	s.notification = service.NewNotificationService(repos.notification, repos.goal)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		skill:        controller.NewSkillController(s.skill),
		progress:     controller.NewProgressController(s.progress),
		goal:         controller.NewGoalController(s.goal),
		resource:     controller.NewResourceController(s.resource),
		dashboard:    controller.NewDashboardController(s.dashboard, s.chart),
		notification: controller.NewNotificationController(s.notification),
		achievement:  controller.NewAchievementController(s.achievement),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 后台定时任务：每小时扫描一次即将到期的目标。
// 返回的 cancel 在关停时调用，结束定时协程。
func (a *App) startBackgroundTasks() {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopTasks = cancel
	go a.runDeadlineSweeper(ctx, time.Hour)
}

// runDeadlineSweeper 定时扫描即将到期的目标，ctx 取消后退出
func (a *App) runDeadlineSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.services.notification.SweepDeadlines(time.Now()); err != nil {
				logger.Log.Error("deadline sweep error", zap.Error(err))
			}
		}
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("skill-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.startBackgroundTasks()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.stopTasks != nil {
		a.stopTasks()
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
