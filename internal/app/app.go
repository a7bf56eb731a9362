package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/controller"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/service"
	"studyquest_backend/pkg/database"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"
	"studyquest_backend/pkg/security"
	"studyquest_backend/pkg/tracing"

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
	user     *repository.UserRepository
	subject  *repository.SubjectRepository
	lesson   *repository.LessonRepository
	progress *repository.ProgressRepository
	xp       *repository.XpRepository
	activity *repository.ActivityRepository
	roster   *repository.RosterRepository
}

type services struct {
	auth        *service.AuthService
	progress    *service.ProgressService
	lesson      *service.LessonService
	dashboard   *service.DashboardService
	quest       *service.QuestService
	leaderboard *service.LeaderboardService
	teacher     *service.TeacherService
}

type controllers struct {
	auth        *controller.AuthController
	subject     *controller.SubjectController
	lesson      *controller.LessonController
	dashboard   *controller.DashboardController
	leaderboard *controller.LeaderboardController
	teacher     *controller.TeacherController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		subject:  repository.NewSubjectRepository(db),
		lesson:   repository.NewLessonRepository(db),
		progress: repository.NewProgressRepository(db),
		xp:       repository.NewXpRepository(db),
		activity: repository.NewActivityRepository(db),
		roster:   repository.NewRosterRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.progress = service.NewProgressService(db, repos.lesson, repos.subject, repos.progress, repos.activity)
	s.lesson = service.NewLessonService(repos.lesson, s.progress)
	s.dashboard = service.NewDashboardService(repos.user, repos.subject, repos.lesson, repos.progress, repos.xp, s.progress)
	s.quest = service.NewQuestService(repos.xp, repos.progress, s.progress)
	s.leaderboard = service.NewLeaderboardService(repos.xp, repos.user, rdb)
	s.teacher = service.NewTeacherService(repos.roster, repos.user, repos.xp)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.progress),
		subject:     controller.NewSubjectController(repos.subject, repos.lesson, repos.progress),
		lesson:      controller.NewLessonController(s.lesson),
		dashboard:   controller.NewDashboardController(s.dashboard, s.quest),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		teacher:     controller.NewTeacherController(s.teacher),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

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
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The leaderboard cache degrades to direct queries without redis.
		logger.Log.Warn("Redis unavailable, leaderboard caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studyquest", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
