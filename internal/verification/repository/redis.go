package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
	"github.com/redis/go-redis/v9"
)

// RedisRepo stores each verification as a hash under "<prefix><id>". HSET only
// writes the given fields, so other fields on the hash survive a decision.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = verification.Collection + ":"
	}
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) key(id string) string {
	return r.prefix + id
}

func (r *RedisRepo) UpsertDecision(ctx context.Context, id string, status verification.Status) error {
	// server clock, not ours
	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis time: %w", err)
	}
	err = r.client.HSet(ctx, r.key(id),
		"status", string(status),
		"decidedAt", now.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("upsert verification %s: %w", id, err)
	}
	return nil
}

func (r *RedisRepo) Get(ctx context.Context, id string) (*verification.Record, error) {
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	rec := &verification.Record{ID: id, Status: verification.Status(fields["status"])}
	if s := fields["decidedAt"]; s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, fmt.Errorf("parse decidedAt for %s: %w", id, err)
		}
		rec.DecidedAt = &t
	}
	return rec, nil
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
