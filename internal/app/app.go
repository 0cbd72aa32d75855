package app

import (
	"buriti_backend/internal/config"
	"buriti_backend/internal/controller"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"
	"buriti_backend/pkg/database"
	"buriti_backend/pkg/logger"
	"buriti_backend/pkg/monitoring"
	"buriti_backend/pkg/security"
	"buriti_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	module     *repository.ModuleRepository
	content    *repository.ContentRepository
	enrollment *repository.EnrollmentRepository
	progress   *repository.ProgressRepository
	forum      *repository.ForumRepository
	task       *repository.TaskRepository
	test       *repository.TestRepository
	grade      *repository.GradeRepository
	news       *repository.NewsRepository
	sequencer  *repository.Sequencer
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	catalog     *service.CatalogService
	content     *service.ContentService
	enrollment  *service.EnrollmentService
	progress    *service.ProgressService
	certificate *service.CertificateService
	forum       *service.ForumService
	task        *service.TaskService
	test        *service.TestService
	grade       *service.GradeService
	news        *service.NewsService
	user        *service.UserService
}

type controllers struct {
	auth       *controller.AuthController
	course     *controller.CourseController
	module     *controller.ModuleController
	content    *controller.ContentController
	enrollment *controller.EnrollmentController
	progress   *controller.ProgressController
	forum      *controller.ForumController
	task       *controller.TaskController
	test       *controller.TestController
	grade      *controller.GradeController
	news       *controller.NewsController
	user       *controller.UserController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		module:     repository.NewModuleRepository(db),
		content:    repository.NewContentRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		progress:   repository.NewProgressRepository(db),
		forum:      repository.NewForumRepository(db),
		task:       repository.NewTaskRepository(db),
		test:       repository.NewTestRepository(db),
		grade:      repository.NewGradeRepository(db),
		news:       repository.NewNewsRepository(db),
		sequencer:  repository.NewSequencer(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.user, db)
	s.catalog = service.NewCatalogService(repos.course, repos.module, repos.content, repos.sequencer, s.storage, db)
	s.content = service.NewContentService(repos.content, repos.module, repos.sequencer, s.storage, s.enrollment, rdb, db)
	s.progress = service.NewProgressService(repos.progress, repos.module, repos.enrollment)
	s.certificate = service.NewCertificateService(repos.progress, repos.course)
	s.forum = service.NewForumService(repos.forum, repos.module, repos.enrollment, s.enrollment, repos.sequencer, db)
	s.task = service.NewTaskService(repos.task, repos.course, repos.enrollment, s.enrollment, s.storage, db)
	s.test = service.NewTestService(repos.test, repos.course, repos.enrollment)
	s.grade = service.NewGradeService(repos.grade, repos.user, repos.course)
	s.news = service.NewNewsService(repos.news)
	s.user = service.NewUserService(repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		course:     controller.NewCourseController(s.catalog, s.enrollment, s.progress, s.certificate),
		module:     controller.NewModuleController(s.catalog),
		content:    controller.NewContentController(s.content),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		progress:   controller.NewProgressController(s.progress),
		forum:      controller.NewForumController(s.forum),
		task:       controller.NewTaskController(s.task),
		test:       controller.NewTestController(s.test),
		grade:      controller.NewGradeController(s.grade),
		news:       controller.NewNewsController(s.news),
		user:       controller.NewUserController(s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Database migration failed", zap.Error(err))
		}
		if err := database.SeedAdmin(db, &cfg.Admin); err != nil {
			logger.Log.Fatal("Admin seed failed", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, upload progress tracking disabled", zap.Error(err))
		rdb = nil
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

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("buriti-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	log.Println("Server exiting")
}
