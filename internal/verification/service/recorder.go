package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification/repository"
	"github.com/loginverify/loginverify/backend/go-services/pkg/metrics"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
)

// Recorder stores decisions made through decision links.
type Recorder struct {
	repo repository.Repository
}

func NewRecorder(repo repository.Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record validates the link parameters and merge-upserts the decision. A later
// decision for the same id overwrites an earlier one.
func (r *Recorder) Record(ctx context.Context, id, action string) (verification.Status, error) {
	status, ok := verification.StatusForAction(action)
	if id == "" || !ok {
		metrics.Decisions.WithLabelValues("invalid").Inc()
		return "", ErrInvalidRequest
	}
	if err := r.repo.UpsertDecision(ctx, id, status); err != nil {
		metrics.Decisions.WithLabelValues("error").Inc()
		return "", fmt.Errorf("record decision: %w", err)
	}
	metrics.Decisions.WithLabelValues(string(status)).Inc()
	return status, nil
}

// Lookup returns the current record for id; ids without a decision are pending.
func (r *Recorder) Lookup(ctx context.Context, id string) (*verification.Record, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	rec, err := r.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return &verification.Record{ID: id, Status: verification.StatusPending}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup verification: %w", err)
	}
	// created elsewhere, not decided yet
	if rec.Status == "" {
		rec.Status = verification.StatusPending
	}
	return rec, nil
}

// Ready reports whether the store is reachable.
func (r *Recorder) Ready(ctx context.Context) error {
	return r.repo.Ping(ctx)
}
