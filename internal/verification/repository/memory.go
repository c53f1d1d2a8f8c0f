package repository

import (
	"context"
	"sync"
	"time"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
)

// MemoryRepo keeps verification documents as field maps so merge semantics
// match the document stores. Used for development and unit tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]map[string]interface{}
	now  func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]map[string]interface{}), now: time.Now}
}

// Merge sets the given fields on document id, creating it when absent.
func (m *MemoryRepo) Merge(id string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		doc = make(map[string]interface{}, len(fields))
		m.docs[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
}

// Fields returns a copy of the raw document, or nil when absent.
func (m *MemoryRepo) Fields(id string) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil
	}
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (m *MemoryRepo) UpsertDecision(ctx context.Context, id string, status verification.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Merge(id, map[string]interface{}{
		"status":    string(status),
		"decidedAt": m.now().UTC(),
	})
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*verification.Record, error) {
	doc := m.Fields(id)
	if doc == nil {
		return nil, ErrNotFound
	}
	rec := &verification.Record{ID: id}
	if s, ok := doc["status"].(string); ok {
		rec.Status = verification.Status(s)
	}
	if t, ok := doc["decidedAt"].(time.Time); ok {
		rec.DecidedAt = &t
	}
	return rec, nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error { return nil }
