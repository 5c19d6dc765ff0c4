package main

// @title RepCoach API
// @version 1.0
// @description Mobile-first sales CRM with AI conversation analysis and coaching.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jordanlanch/repcoach/config"
	_ "github.com/jordanlanch/repcoach/docs" // Swagger docs
	"github.com/jordanlanch/repcoach/pkg/ai/llm"
	apierrors "github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/api/handlers"
	custommw "github.com/jordanlanch/repcoach/pkg/api/middleware"
	"github.com/jordanlanch/repcoach/pkg/auth"
	"github.com/jordanlanch/repcoach/pkg/cache"
	"github.com/jordanlanch/repcoach/pkg/courseplans"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/dashboard"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/email"
	"github.com/jordanlanch/repcoach/pkg/export"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/jobs"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	custommiddleware "github.com/jordanlanch/repcoach/pkg/middleware"
	"github.com/jordanlanch/repcoach/pkg/phone"
	"github.com/jordanlanch/repcoach/pkg/reports"
	"github.com/jordanlanch/repcoach/pkg/schedules"
	"github.com/jordanlanch/repcoach/pkg/slack"
	"github.com/jordanlanch/repcoach/pkg/users"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	apierrors.SetLogger(log)
	log.Info("configuration loaded", "environment", cfg.APIEnvironment, "timezone", cfg.Timezone)

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Warn("failed to initialize sentry", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()
	loc := cfg.Location()

	db, err := database.NewClient(ctx, cfg.DatabaseURL, database.Options{
		Pool: database.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxOpenConns / 4,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		ConnectTimeout: time.Duration(cfg.DBConnectRetrySeconds) * time.Second,
		Bootstrap:      cfg.DBSchemaBootstrap,
		Logger:         log,
	})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Redis backs the token blacklist and the report cache. Without it
	// logout cannot revoke tokens, so it is required outside development.
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		if cfg.IsProduction() {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		log.Warn("redis unavailable, token revocation and report caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	m := metrics.New()
	go reportPoolStats(db, m)

	llmClient, transcriber, err := llm.New(providerConfig(cfg), log)
	if err != nil {
		log.Warn("AI provider not configured, AI endpoints will fail", "error", err)
	}
	coach := intelligence.NewCoach(llmClient, transcriber, log, m)

	// Services
	userService := users.NewService(db)
	customerService := customers.NewService(db, phone.NewNormalizer(cfg.DefaultPhoneRegion), log)
	scheduleService := schedules.NewService(db)
	interactionService := interactions.NewService(db, coach, log)
	coursePlanService := courseplans.NewService(db, coach)
	dashboardService := dashboard.NewService(db, loc)
	reportService := reports.NewService(db, coach, reports.Options{
		Cache:    redisClient,
		CacheTTL: time.Duration(cfg.ReportCacheMinutes) * time.Minute,
		Location: loc,
		Metrics:  m,
		Logger:   log,
	})

	storage, err := exportStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize export storage", "error", err)
		os.Exit(1)
	}
	exportService := export.NewService(db, storage, m, log)

	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, publicURL(cfg), cfg.SendGridAPIKey, log)
	var slackClient slack.SlackClient
	if cfg.SlackWebhookURL != "" {
		slackClient = slack.NewWebhookClient(cfg.SlackWebhookURL)
	}
	slackService := slack.NewService(slackClient)

	var blacklist *auth.TokenBlacklist
	if redisClient != nil {
		blacklist = auth.NewTokenBlacklist(redisClient)
	}
	var google auth.IdentityVerifier
	if cfg.GoogleClientID != "" {
		google = auth.NewGoogleVerifier(cfg.GoogleClientID)
	}

	// Scheduled jobs
	var cronManager *jobs.CronManager
	if cfg.JobsEnabled {
		runner := &jobs.Runner{
			Customers:     customerService,
			Schedules:     scheduleService,
			Users:         userService,
			Email:         emailService,
			Slack:         slackService,
			Metrics:       m,
			Log:           log.With("component", "jobs"),
			Location:      loc,
			RetentionDays: cfg.TrashRetentionDays,
		}
		cronManager = jobs.NewCronManager(runner, jobs.Specs{
			TrashPurge: cfg.TrashPurgeCron,
			Digest:     cfg.DigestCron,
		}, log)
		if err := cronManager.SetupJobs(); err != nil {
			log.Error("failed to setup cron jobs", "error", err)
			os.Exit(1)
		}
		cronManager.Start()
	}

	// Handlers
	language := handlers.UserLanguage(userService)
	authHandler := handlers.NewAuthHandler(userService, cfg, handlers.AuthDeps{
		Blacklist: blacklist,
		Google:    google,
		Email:     emailService,
		Slack:     slackService,
		Metrics:   m,
		Logger:    log,
	})
	userHandler := handlers.NewUserHandler(userService)
	customerHandler := handlers.NewCustomerHandler(customerService, dashboardService, coach, language)
	interactionHandler := handlers.NewInteractionHandler(interactionService, language)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, customerService, coach, language, loc)
	coursePlanHandler := handlers.NewCoursePlanHandler(coursePlanService, language)
	aiHandler := handlers.NewAIHandler(coach, customerService, reportService, language)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	e := echo.New()
	e.HideBanner = true

	globalLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	defer globalLimiter.Close()
	// login, registration and every AI call share the stricter budget
	strictLimiter := custommiddleware.NewRateLimiter(cfg.AIRateLimitPerMinute, 5)
	defer strictLimiter.Close()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{"method", v.Method, "uri", v.URI, "status", v.Status,
				"latency_ms", v.Latency.Milliseconds(), "ip", v.RemoteIP}
			if v.Error != nil {
				log.Warn("request failed", append(args, "error", v.Error)...)
				return nil
			}
			log.Info("request", args...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(m.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		// downloads are already zip archives
		Skipper: func(c echo.Context) bool { return c.Path() == "/api/v1/exports/:file" },
	}))
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{
		ConnectSources: connectSources(cfg),
		DocsPrefix:     "/swagger/",
	}))
	e.Use(middleware.BodyLimit("20M"))
	e.Use(globalLimiter.Middleware())

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{"status": "healthy", "database": "up", "cache": "disabled"}
		if err := db.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"], body["database"] = "unhealthy", "down"
		}
		if redisClient != nil {
			body["cache"] = "up"
			if err := redisClient.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"], body["cache"] = "unhealthy", "down"
			}
		}
		return c.JSON(status, body)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	requireAuth := custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, blacklist)
	strict := strictLimiter.Middleware()

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, strict)
		authRoutes.POST("/login", authHandler.Login, strict)
		authRoutes.POST("/google", authHandler.Google, strict)
		authRoutes.POST("/logout", authHandler.Logout, requireAuth)
	}

	api := v1.Group("", requireAuth)
	{
		api.GET("/users/me", userHandler.Me)
		api.PATCH("/users/me", userHandler.UpdateMe)

		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.POST("/customers/parse", customerHandler.Parse, strict)
		api.GET("/customers/:id", customerHandler.Get)
		api.PATCH("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)
		api.POST("/customers/:id/restore", customerHandler.Restore)

		api.GET("/interactions", interactionHandler.List)
		api.POST("/interactions", interactionHandler.Create, strict)
		api.GET("/interactions/:id", interactionHandler.Get)
		api.PATCH("/interactions/:id", interactionHandler.Update)
		api.DELETE("/interactions/:id", interactionHandler.Delete)
		api.PUT("/interactions/:id/next-steps", interactionHandler.ReplaceNextSteps)
		api.POST("/interactions/:id/next-steps/:stepId/schedule", interactionHandler.PromoteStep)
		api.POST("/interactions/:id/promote", interactionHandler.Promote)

		api.GET("/schedules", scheduleHandler.List)
		api.POST("/schedules", scheduleHandler.Create)
		api.POST("/schedules/parse", scheduleHandler.Parse, strict)
		api.GET("/schedules/:id", scheduleHandler.Get)
		api.PATCH("/schedules/:id", scheduleHandler.Update)
		api.POST("/schedules/:id/toggle", scheduleHandler.Toggle)
		api.DELETE("/schedules/:id", scheduleHandler.Delete)

		api.GET("/course-plans", coursePlanHandler.List)
		api.POST("/course-plans", coursePlanHandler.Create)
		api.POST("/course-plans/generate", coursePlanHandler.Generate, strict)
		api.GET("/course-plans/:id", coursePlanHandler.Get)
		api.PATCH("/course-plans/:id", coursePlanHandler.Update)
		api.DELETE("/course-plans/:id", coursePlanHandler.Delete)

		ai := api.Group("/ai", strict)
		ai.POST("/roleplay", aiHandler.RolePlayTurn)
		ai.POST("/roleplay/score", aiHandler.RolePlayScore)
		ai.POST("/keywords", aiHandler.Keywords)
		ai.POST("/report", aiHandler.Report)

		api.GET("/dashboard", dashboardHandler.Summary)
		api.GET("/dashboard/funnel", dashboardHandler.Funnel)

		api.POST("/exports", exportHandler.Create)
		api.GET("/exports/:file", exportHandler.Download)
	}

	address := cfg.APIHost + ":" + cfg.APIPort
	log.Info("RepCoach API starting",
		"address", address,
		"ai_provider", cfg.AIProvider,
		"storage", cfg.StorageType,
		"jobs", cfg.JobsEnabled,
		"rate_limit_per_minute", cfg.RateLimitRequestsPerMinute)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if cronManager != nil {
		<-cronManager.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	log.Info("server stopped")
}

// providerConfig picks the key and model matching the configured provider
func providerConfig(cfg *config.Config) llm.ProviderConfig {
	pc := llm.ProviderConfig{
		Provider:    cfg.AIProvider,
		Temperature: float32(cfg.AITemperature),
		MaxTokens:   cfg.AIMaxTokens,
	}
	switch cfg.AIProvider {
	case llm.ProviderAnthropic:
		pc.APIKey, pc.Model = cfg.AnthropicAPIKey, cfg.AnthropicModel
	case llm.ProviderOllama:
		pc.BaseURL, pc.Model = cfg.OllamaBaseURL, cfg.OllamaModel
	default:
		pc.APIKey, pc.Model, pc.BaseURL = cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL
		pc.TranscribeModel = cfg.TranscribeModel
	}
	return pc
}

func exportStorage(ctx context.Context, cfg *config.Config) (export.Storage, error) {
	if cfg.StorageType == "s3" {
		return export.NewS3Storage(ctx, export.S3Config{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
			Bucket:          cfg.S3Bucket,
		})
	}
	return export.NewLocalStorage(cfg.StorageLocalPath, publicURL(cfg)+"/api/v1/exports")
}

func publicURL(cfg *config.Config) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}
	return "http://localhost:" + cfg.APIPort
}

func reportPoolStats(db *database.Client, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		m.UpdateDBConnections(float64(db.Stats().OpenConnections))
	}
}

// connectSources lists the origins clients fetch from besides the API
// itself: the public API host and the bucket behind presigned exports.
func connectSources(cfg *config.Config) []string {
	sources := append([]string{}, cfg.CSPConnectSources...)
	if cfg.PublicURL != "" {
		sources = append(sources, cfg.PublicURL)
	}
	if cfg.StorageType == "s3" {
		sources = append(sources, custommiddleware.S3Origin(cfg.S3Bucket, cfg.AWSRegion))
	}
	return sources
}
