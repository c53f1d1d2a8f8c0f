package repository

import (
	"context"
	"errors"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
)

var (
	ErrNotFound = errors.New("verification not found")
)

// Repository persists verification decisions.
type Repository interface {
	// UpsertDecision creates the record for id if absent, or updates only its
	// status and decidedAt fields if present. decidedAt is assigned by the store.
	UpsertDecision(ctx context.Context, id string, status verification.Status) error
	// Get returns ErrNotFound when no decision has been recorded for id.
	Get(ctx context.Context, id string) (*verification.Record, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
