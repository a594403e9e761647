// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sumon-service/internal/config"
	"sumon-service/internal/db"
	authHandler "sumon-service/internal/handlers/auth"
	healthHandler "sumon-service/internal/handlers/health"
	inquiryHandler "sumon-service/internal/handlers/inquiry"
	projectHandler "sumon-service/internal/handlers/project"
	"sumon-service/internal/middleware"
	"sumon-service/internal/pkg/jwt"
	"sumon-service/internal/pkg/ratelimit"
	"sumon-service/internal/repository/postgres"
	authUsecase "sumon-service/internal/service/auth"
	"sumon-service/internal/service/email"
	inquiryUsecase "sumon-service/internal/service/inquiry"
	notifyUsecase "sumon-service/internal/service/notification"
	projectUsecase "sumon-service/internal/service/project"
	"sumon-service/internal/storage"
)

type Server struct {
	cfg      config.AppConfig
	engine   *gin.Engine
	logger   *zap.Logger
	http     *http.Server
	notifier *notifyUsecase.NotificationService
}

func NewServer() *Server {
	cfg := config.Load()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New()}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	if s.cfg.Env != "production" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	logger.Info("connected to postgres")

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to redis")

	// ----- JWT -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Image storage -----
	var imageStore storage.ImageStore
	if s.cfg.UseSupabase {
		imageStore, err = storage.NewSupabaseStore(s.cfg.SupabaseURL, s.cfg.SupabaseKey, s.cfg.SupabaseBucket)
	} else {
		imageStore, err = storage.NewLocalStore(s.cfg.UploadDir)
	}
	if err != nil {
		return fmt.Errorf("failed to set up image storage: %w", err)
	}

	// ----- Email -----
	emailSender := email.NewEmailSender(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPass,
		s.cfg.EmailFrom,
		s.cfg.SMTPFromName,
		s.cfg.SMTPSecure,
	)

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)

	// ----- Services -----
	notifier := notifyUsecase.NewNotificationService(emailSender, s.cfg.ContactEmail, logger)
	s.notifier = notifier

	authService := authUsecase.NewAuthService(adminRepo, jwtManager)
	projectService := projectUsecase.NewProjectService(projectRepo, imageStore, logger)
	inquiryService := inquiryUsecase.NewInquiryService(inquiryRepo, notifier)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, s.cfg.AllowRegistration)
	projectHandlerInst := projectHandler.NewProjectHandler(projectService)
	inquiryHandlerInst := inquiryHandler.NewInquiryHandler(inquiryService)
	healthHandlerInst := healthHandler.NewHealthHandler(s.cfg)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)
	limiter := ratelimit.NewLimiter(redisClient, s.cfg.RateLimitMax, s.cfg.RateLimitWindow)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
		middleware.RateLimitMiddleware(limiter, logger),
	)

	// Serve locally stored images when supabase is off.
	if local, ok := imageStore.(*storage.LocalStore); ok {
		s.engine.Static("/uploads", local.Dir())
	}

	SetupRouter(s.engine, &Handlers{
		AuthHandler:    authHandlerInst,
		ProjectHandler: projectHandlerInst,
		InquiryHandler: inquiryHandlerInst,
		HealthHandler:  healthHandlerInst,
		AuthMiddleware: authMiddleware,
	})

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	logger.Info("server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and waits for pending notification
// emails before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	if s.notifier != nil {
		s.notifier.Wait()
	}
	return err
}
