package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"placecell/internal/ai"
	"placecell/internal/app"
	"placecell/internal/config"
	"placecell/internal/database"
	apphttp "placecell/internal/http"
	"placecell/internal/http/handlers"
	"placecell/internal/http/metrics"
	httpmw "placecell/internal/http/middleware"
	"placecell/internal/notify"
	"placecell/internal/observability"
	"placecell/internal/repository/postgres"
	"placecell/internal/security"
	"placecell/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret, cfg.TokenTTL)

	var blobStore app.ResumeStore
	if cfg.BlobEndpoint != "" {
		store, err := storage.NewBlobStore(context.Background(), storage.BlobConfig{
			Endpoint:  cfg.BlobEndpoint,
			AccessKey: cfg.BlobAccessKey,
			SecretKey: cfg.BlobSecretKey,
			Bucket:    cfg.BlobBucket,
			UseSSL:    cfg.BlobUseSSL,
			URLTTL:    cfg.ResumeURLTTL,
		})
		if err != nil {
			log.Fatalf("failed to init blob store: %v", err)
		}
		blobStore = store
	} else {
		logger.Info("BLOB_ENDPOINT not set, resume uploads disabled")
	}

	var notifier notify.Notifier
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		logger.Info("SMTP_HOST not set, status emails disabled")
	}
	dispatcher := notify.NewDispatcher(notifier, logger, 64)
	defer dispatcher.Close()

	authService := app.NewAuthService(userRepo, jwtProvider, logger)
	studentService := app.NewStudentService(studentRepo, blobStore, logger)
	companyService := app.NewCompanyService(companyRepo)
	applicationService := app.NewApplicationService(applicationRepo, dispatcher, logger)
	recordService := app.NewRecordService(recordRepo)
	analyticsService := app.NewAnalyticsService(analyticsRepo)
	aiClient := ai.NewClient(cfg.OpenAIKey)

	var rateLimiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rateLimiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	}

	collector := metrics.NewCollector()

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, rateLimiter),
		StudentHandler:     handlers.NewStudentHandler(studentService),
		CompanyHandler:     handlers.NewCompanyHandler(companyService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, rateLimiter),
		RecordHandler:      handlers.NewRecordHandler(recordService),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(analyticsService),
		AIHandler:          handlers.NewAIHandler(aiClient),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		Metrics:            collector,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// log rather than exit so the deferred dispatcher drain still runs
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed: " + err.Error())
	}
}
