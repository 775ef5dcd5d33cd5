package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shakti_backend/internal/catalog"
	"shakti_backend/internal/config"
	"shakti_backend/internal/controller"
	"shakti_backend/internal/repository"
	"shakti_backend/internal/service"
	"shakti_backend/pkg/database"
	"shakti_backend/pkg/logger"
	"shakti_backend/pkg/monitoring"
	"shakti_backend/pkg/security"
	"shakti_backend/pkg/tracing"

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
	Catalog         *catalog.Registry
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	enrollments repository.EnrollmentStore
	product     *repository.ProductRepository
	order       *repository.OrderRepository
	certificate *repository.CertificateRepository
	chat        *repository.ChatRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	ai          *service.AIService
	chat        *service.ChatService
	translate   *service.TranslateService
	enrollment  *service.EnrollmentService
	certificate *service.CertificateService
	product     *service.ProductService
	order       *service.OrderService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	course      *controller.CourseController
	learning    *controller.LearningController
	certificate *controller.CertificateController
	chat        *controller.ChatController
	translate   *controller.TranslateController
	product     *controller.ProductController
	order       *controller.OrderController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps the active config and notifies registered callbacks.
// Connection settings require a restart; only tunables are hot-reloaded.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *repositories {
	var store repository.EnrollmentStore
	switch cfg.Enrollment.Store {
	case "redis":
		store = repository.NewRedisEnrollmentStore(rdb)
	default:
		store = repository.NewGormEnrollmentStore(db)
	}

	return &repositories{
		user:        repository.NewUserRepository(db),
		enrollments: store,
		product:     repository.NewProductRepository(db),
		order:       repository.NewOrderRepository(db),
		certificate: repository.NewCertificateRepository(db),
		chat:        repository.NewChatRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.ai = service.NewAIService(cfg.AI)
	s.chat = service.NewChatService(s.ai, repos.chat)
	s.translate = service.NewTranslateService(cfg.Translate)
	s.enrollment = service.NewEnrollmentService(a.Catalog, repos.enrollments)
	s.certificate = service.NewCertificateService(a.Catalog, repos.enrollments, repos.certificate)
	s.product = service.NewProductService(repos.product)
	s.order = service.NewOrderService(repos.order, repos.product)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user, s.storage),
		course:      controller.NewCourseController(a.Catalog),
		learning:    controller.NewLearningController(s.enrollment),
		certificate: controller.NewCertificateController(s.certificate, repos.user),
		chat:        controller.NewChatController(s.chat),
		translate:   controller.NewTranslateController(s.translate),
		product:     controller.NewProductController(s.product, s.storage),
		order:       controller.NewOrderController(s.order),
		health:      controller.NewHealthController(db, rdb),
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
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	reg, err := catalog.NewRegistry(catalog.Seed())
	if err != nil {
		logger.Log.Fatal("Failed to load course catalog", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: reg,
	}

	repos := app.initRepositories(cfg, db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("shakti-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
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

	logger.Log.Sync()
	log.Println("Server exiting")
}
