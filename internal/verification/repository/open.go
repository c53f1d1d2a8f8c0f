package repository

import (
	"context"

	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/loginverify/loginverify/backend/go-services/internal/database"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
)

const mongoConnectAttempts = 5

// Open builds the repository selected by cfg.Store.Backend. The returned
// close func releases the underlying client and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Repository, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreMongo:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts)
		if err != nil {
			return nil, func() {}, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(verification.Collection)
		logger.Infof("using MongoDB collection %s.%s for verifications", cfg.MongoDB.Database, verification.Collection)
		return NewMongoRepo(col), func() { _ = client.Disconnect(context.Background()) }, nil
	case config.StoreRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Infof("using Redis at %s:%s for verifications", cfg.Redis.Host, cfg.Redis.Port)
		return NewRedisRepo(client, ""), func() { _ = client.Close() }, nil
	default:
		logger.Warnf("using in-memory verification store; decisions are lost on restart")
		return NewMemoryRepo(), func() {}, nil
	}
}
