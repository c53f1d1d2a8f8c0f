package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/loginverify/loginverify/backend/go-services/handlers"
	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/loginverify/loginverify/backend/go-services/internal/mail"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/handler"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/repository"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/service"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
	"github.com/loginverify/loginverify/backend/go-services/pkg/metrics"
	"github.com/loginverify/loginverify/backend/go-services/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store=%s mail_enabled=%v transport=%s base_url=%s",
		cfg.Store.Backend, cfg.Mail.Enabled(), cfg.Mail.Transport, cfg.Verify.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open verification store: %v", err)
	}
	defer closeStore()

	var sender mail.Sender
	if cfg.Mail.Enabled() {
		sender, err = mail.NewSender(cfg.Mail)
		if err != nil {
			logger.Fatalf("failed to configure mail transport: %v", err)
		}
	}
	mailer := service.NewMailer(cfg, sender)
	recorder := service.NewRecorder(repo)

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		ginzap.Ginzap(logger.Zap(), time.RFC3339, true),
		ginzap.RecoveryWithZap(logger.Zap(), true),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: 200 only when the verification store answers
	r.GET("/ready", func(c *gin.Context) {
		pctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps := map[string]bool{"store": recorder.Ready(pctx) == nil, "mail": cfg.Mail.Enabled()}
		uptime := time.Since(startTime).String()
		if !deps["store"] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})

	handlers.RegisterSwagger(r)
	handler.RegisterVerificationRoutes(r, mailer, recorder)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting verification service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
