package service

import (
	"context"
	"errors"

	"github.com/loginverify/loginverify/backend/go-services/internal/mail"
	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
)

type fakeSender struct {
	calls   []*mail.Message
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, msg *mail.Message) error {
	f.calls = append(f.calls, msg)
	return f.sendErr
}

func (f *fakeSender) Name() string { return "fake" }

// failingRepo fails every operation.
type failingRepo struct{ upserts int }

var errStoreDown = errors.New("store down")

func (f *failingRepo) UpsertDecision(ctx context.Context, id string, status verification.Status) error {
	f.upserts++
	return errStoreDown
}

func (f *failingRepo) Get(ctx context.Context, id string) (*verification.Record, error) {
	return nil, errStoreDown
}

func (f *failingRepo) Ping(ctx context.Context) error { return errStoreDown }
