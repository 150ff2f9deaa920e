package main

// @title LeadPilot API
// @version 1.0
// @description Lead pipeline CRM with Gmail and Meta ingestion for small teams.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name leadpilot_session
// @description Session cookie set by the login endpoint.

import (
	"context"
	"fmt"
	"log"
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

	"github.com/jfmartinez/leadpilot/config"
	"github.com/jfmartinez/leadpilot/pkg/activity"
	"github.com/jfmartinez/leadpilot/pkg/ai/llm"
	"github.com/jfmartinez/leadpilot/pkg/api/handlers"
	custommw "github.com/jfmartinez/leadpilot/pkg/api/middleware"
	"github.com/jfmartinez/leadpilot/pkg/auth"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/database"
	"github.com/jfmartinez/leadpilot/pkg/drafts"
	"github.com/jfmartinez/leadpilot/pkg/email"
	"github.com/jfmartinez/leadpilot/pkg/export"
	importpkg "github.com/jfmartinez/leadpilot/pkg/import"
	"github.com/jfmartinez/leadpilot/pkg/jobs"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	custommiddleware "github.com/jfmartinez/leadpilot/pkg/middleware"
	"github.com/jfmartinez/leadpilot/pkg/oauth"
	"github.com/jfmartinez/leadpilot/pkg/settings"
	"github.com/jfmartinez/leadpilot/pkg/social"
	"github.com/jfmartinez/leadpilot/pkg/sweep"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	webhookRateLimiter := custommiddleware.NewRateLimiter(300, 50) // Meta retries deliveries in bursts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.FrontendURL)))
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))
	e.Use(middleware.Gzip())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadPilot API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize services
	settingsService := settings.NewService(db.Ent)
	lifecycleService := lifecycle.NewService(db.Ent)
	leadService := leads.NewService(db.Ent, redisClient)
	activityService := activity.NewService(db.Ent)
	mailboxClient := mailbox.NewClient(mailbox.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		BaseURL:      cfg.GmailAPIBaseURL,
		TokenURL:     cfg.GoogleTokenURL,
	}, settingsService)
	oauthService := oauth.NewService(oauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
		TokenURL:     cfg.GoogleTokenURL,
	}, settingsService)
	sweepService := sweep.NewService(db.Ent, lifecycleService, mailboxClient)
	graphClient := social.NewClient(social.Config{
		AccessToken: cfg.MetaPageAccessToken,
		BaseURL:     cfg.MetaGraphBaseURL,
	})
	socialService := social.NewService(db.Ent, redisClient, graphClient, lifecycleService, leadService)
	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}, log.Default())
	draftService := drafts.NewService(db.Ent, settingsService, llmClient, mailboxClient, cfg.EmailFromName)
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.FrontendURL, cfg.SendGridAPIKey)
	exportService := export.NewService(leadService)
	importService := importpkg.NewService(db.Ent, leadService)

	// Initialize cron manager for scheduled sweeps and the daily digest
	cronManager := jobs.NewCronManager(sweepService, leadService, emailService, prometheusMetrics, cfg.DigestTo, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	secureCookies := cfg.APIEnvironment == "production"
	authHandler := handlers.NewAuthHandler(db.Ent, tokenBlacklist, prometheusMetrics, cfg.JWTSecret, cfg.JWTExpirationHours, secureCookies)
	leadHandler := handlers.NewLeadHandler(leadService, lifecycleService, prometheusMetrics)
	activityHandler := handlers.NewActivityHandler(activityService)
	emailHandler := handlers.NewEmailHandler(mailboxClient, leadService, lifecycleService, activityService, prometheusMetrics)
	draftHandler := handlers.NewDraftHandler(draftService, prometheusMetrics)
	sweepHandler := handlers.NewSweepHandler(sweepService, prometheusMetrics)
	webhookHandler := handlers.NewWebhookHandler(socialService, prometheusMetrics, cfg.MetaVerifyToken)
	exportHandler := handlers.NewExportHandler(exportService)
	oauthHandler := handlers.NewOAuthHandler(oauthService, cfg.FrontendURL, secureCookies)
	importHandler := handlers.NewImportHandler(importService)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		// Login with rate limit: 5 per minute (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
		authRoutes.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	}

	// Gmail OAuth callback (public; state cookie verified)
	v1.GET("/gmail/callback", oauthHandler.Callback)

	// Meta webhook routes (public; verified by token)
	v1.GET("/webhooks/meta", webhookHandler.Verify)
	v1.POST("/webhooks/meta", webhookHandler.Receive, webhookRateLimiter.RateLimitMiddleware())

	// Scheduler routes (shared secret)
	cronRoutes := v1.Group("/cron", custommiddleware.SharedSecret(cfg.CronSecret))
	{
		cronRoutes.GET("/followups", sweepHandler.RunFollowups)
		cronRoutes.POST("/followups", sweepHandler.RunFollowups)
	}

	// Protected routes (require session)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist))
	{
		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.GET("", leadHandler.List)
			leadsGroup.POST("", leadHandler.Create)
			leadsGroup.GET("/stats", leadHandler.Stats)
			leadsGroup.GET("/export", exportHandler.Download)
			leadsGroup.POST("/import", importHandler.Upload)
			leadsGroup.GET("/:id", leadHandler.Get)
			leadsGroup.PATCH("/:id", leadHandler.Update)
			leadsGroup.DELETE("/:id", leadHandler.Delete)
			leadsGroup.GET("/:id/activities", activityHandler.List)
			leadsGroup.POST("/:id/activities", activityHandler.Create)
			leadsGroup.GET("/:id/emails", emailHandler.Conversation)
			leadsGroup.POST("/:id/check-response", sweepHandler.CheckResponse)
		}

		protected.GET("/gmail/status", emailHandler.Status)
		protected.GET("/gmail/connect", oauthHandler.Connect)
		protected.DELETE("/gmail/disconnect", oauthHandler.Disconnect)
		protected.GET("/gmail/threads/:threadId", emailHandler.Thread)
		protected.POST("/emails/send", emailHandler.Send)
		protected.POST("/drafts", draftHandler.Draft)
		protected.POST("/sweep/responses", sweepHandler.SweepResponses)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadPilot API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: every 6h (follow-ups), daily 7AM (digest)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
