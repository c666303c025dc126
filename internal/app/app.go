package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drive_safe_backend/internal/config"
	"drive_safe_backend/internal/controller"
	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/service"
	"drive_safe_backend/pkg/configwatcher"
	"drive_safe_backend/pkg/database"
	"drive_safe_backend/pkg/logger"
	"drive_safe_backend/pkg/monitoring"
	"drive_safe_backend/pkg/security"
	"drive_safe_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	advice       *repository.AdviceRepository
	tag          *repository.TagRepository
	testQuestion *repository.TestQuestionRepository
	testPassed   *repository.TestPassedRepository
	score        *repository.ScoreRepository
	user         *repository.UserRepository
	forumQ       *repository.ForumQuestionRepository
	forumA       *repository.ForumAnswerRepository
}

type services struct {
	auth   *service.AuthService
	user   *service.UserService
	advice *service.AdviceService
	forum  *service.ForumService
	test   *service.TestService
}

type controllers struct {
	auth   *controller.AuthController
	user   *controller.UserController
	advice *controller.AdviceController
	admin  *controller.AdminController
	forum  *controller.ForumController
	test   *controller.TestController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		advice:       repository.NewAdviceRepository(db),
		tag:          repository.NewTagRepository(db),
		testQuestion: repository.NewTestQuestionRepository(db),
		testPassed:   repository.NewTestPassedRepository(db),
		score:        repository.NewScoreRepository(db),
		user:         repository.NewUserRepository(db),
		forumQ:       repository.NewForumQuestionRepository(db),
		forumA:       repository.NewForumAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	return &services{
		auth:   service.NewAuthService(repos.user, cfg),
		user:   service.NewUserService(repos.user, repos.score),
		advice: service.NewAdviceService(repos.advice, repos.testQuestion, repos.tag, rdb, cfg.Cache.AdviceTTL),
		forum:  service.NewForumService(repos.forumQ, repos.forumA, repos.advice, repos.user),
		test:   service.NewTestService(repos.advice, repos.user, repos.testQuestion, repos.testPassed, repos.score, db),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth),
		user:   controller.NewUserController(s.user),
		advice: controller.NewAdviceController(s.advice),
		admin:  controller.NewAdminController(s.advice),
		forum:  controller.NewForumController(s.forum),
		test:   controller.NewTestController(s.test),
		health: controller.NewHealthController(db),
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

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式默认不自动迁移，除非显式传了 -migrate / -migrate-only
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("drive-safe-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	// 缓存 TTL 支持热更新，其余配置项需要重启才生效
	adviceService := services.advice
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		adviceService.CacheTTL = newCfg.Cache.AdviceTTL
		logger.Log.Info("Config reloaded", zap.Duration("advice_cache_ttl", newCfg.Cache.AdviceTTL))
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})

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

	log.Println("Server exiting")
}
