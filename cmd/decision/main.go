package main

import (
	"context"
	"os"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/handler"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/repository"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/service"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
	"github.com/loginverify/loginverify/backend/go-services/pkg/middleware"
)

// Standalone decision recorder: serves only the decision link endpoint and the
// status lookup, for deployments where the mailer runs elsewhere.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	port := os.Getenv("DECISION_SERVICE_PORT")
	if port == "" {
		port = "5010"
	}

	// an unreachable store is fatal: decisions must not land in a throwaway store
	repo, closeStore, err := repository.Open(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("failed to open verification store (%s): %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		ginzap.Ginzap(logger.Zap(), time.RFC3339, true),
		ginzap.RecoveryWithZap(logger.Zap(), true),
	)

	handler.RegisterVerificationRoutes(r, nil, service.NewRecorder(repo))

	logger.Infof("decision service listening on :%s (store=%s)", port, cfg.Store.Backend)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
