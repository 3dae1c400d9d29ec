package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/smartsites-digital/leadchat/internal/api/router"
	"github.com/smartsites-digital/leadchat/internal/chat"
	appconfig "github.com/smartsites-digital/leadchat/internal/config"
	"github.com/smartsites-digital/leadchat/internal/i18n"
	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/internal/notify"
	"github.com/smartsites-digital/leadchat/internal/observability/metrics"
	"github.com/smartsites-digital/leadchat/internal/persuasion"
	"github.com/smartsites-digital/leadchat/internal/webchat"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.ForService(cfg.LogLevel, "leadchat-api", cfg.Env)
	logger.Info("starting leadchat API server", "port", cfg.Port)

	ctx := context.Background()
	chatMetrics := metrics.NewChatMetrics(nil)

	// Lead storage: Postgres when configured, in-memory otherwise.
	var leadsRepo leads.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		leadsRepo = leads.NewPostgresRepository(pool)
		logger.Info("using postgres lead repository")
	} else {
		leadsRepo = leads.NewInMemoryRepository()
		logger.Warn("DATABASE_URL not set, leads are kept in memory")
	}

	// Lead notifications: SendGrid when configured, stub otherwise.
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger.Component("notify")); sg != nil {
		emailSender = sg
	} else {
		emailSender = notify.NewStubEmailSender(logger.Component("notify"))
	}
	notifier := notify.NewService(emailSender, cfg.LeadInboxEmail, cfg.PublicBaseURL, logger.Component("notify"))

	leadService := leads.NewService(leadsRepo, notifier, chatMetrics, logger.Component("leads"))

	// Session storage: Redis when configured, in-memory otherwise.
	var sessionStore chat.Store
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		sessionStore = chat.NewRedisStore(client, cfg.SessionTTL, nil)
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
	} else {
		sessionStore = chat.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, sessions are kept in memory")
	}

	engine := chat.NewEngine(
		i18n.NewCatalog(cfg.DefaultLocale),
		persuasion.NewGenerator(),
		persuasion.NewUpsellGenerator(cfg.UpsellCooldown),
		leadService,
		chat.WithLogger(logger.Component("chat")),
		chat.WithMetrics(chatMetrics),
	)
	chatHandler := webchat.NewHandler(engine, sessionStore, cfg.TypingDelay, logger.Component("webchat"))
	leadsHandler := leads.NewHandler(leadService, logger.Component("leads"))

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		LeadsHandler:       leadsHandler,
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMin:    cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
