package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// memClock issues strictly increasing timestamps so created_at ordering in
// the fakes matches the store-assigned behavior.
type memClock struct {
	mu sync.Mutex
	t  time.Time
}

func newMemClock() *memClock {
	return &memClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *memClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func sameConversation(rowConv *string, filter *string) bool {
	if filter == nil {
		return true
	}
	return rowConv != nil && *rowConv == *filter
}

// ---------------------------------------------------------------------------
// In-memory message repository
// ---------------------------------------------------------------------------

type memMessageRepo struct {
	mu        sync.Mutex
	nextID    int64
	rows      []models.Message
	clock     *memClock
	createErr error
}

func newMemMessageRepo(clock *memClock) *memMessageRepo {
	return &memMessageRepo{clock: clock}
}

func (r *memMessageRepo) Create(_ context.Context, msg *models.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	msg.ID = r.nextID
	msg.CreatedAt = r.clock.next()
	r.rows = append(r.rows, *msg)
	return nil
}

// createAt inserts a row with an explicit created_at, for retention tests.
func (r *memMessageRepo) createAt(msg models.Message, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	msg.ID = r.nextID
	msg.CreatedAt = at
	r.rows = append(r.rows, msg)
}

func (r *memMessageRepo) GetByID(_ context.Context, id int64) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			m := r.rows[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memMessageRepo) List(_ context.Context, conversationID *string, limit int) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Message
	for _, m := range r.rows {
		if conversationID != nil && !sameConversation(m.ConversationID, conversationID) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memMessageRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleteWhere(func(m models.Message) bool { return m.ID == id }), nil
}

func (r *memMessageRepo) DeleteFrom(_ context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	return r.deleteWhere(func(m models.Message) bool {
		return !m.CreatedAt.Before(cutoff) && sameConversation(m.ConversationID, conversationID)
	}), nil
}

func (r *memMessageRepo) DeleteByConversation(_ context.Context, conversationID string) (int64, error) {
	return r.deleteWhere(func(m models.Message) bool {
		return m.ConversationID != nil && *m.ConversationID == conversationID
	}), nil
}

func (r *memMessageRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	return r.deleteWhere(func(m models.Message) bool { return m.CreatedAt.Before(cutoff) }), nil
}

func (r *memMessageRepo) DeleteAll(_ context.Context) (int64, error) {
	return r.deleteWhere(func(models.Message) bool { return true }), nil
}

func (r *memMessageRepo) deleteWhere(match func(models.Message) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []models.Message
	var deleted int64
	for _, m := range r.rows {
		if match(m) {
			deleted++
		} else {
			kept = append(kept, m)
		}
	}
	r.rows = kept
	return deleted
}

func (r *memMessageRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ---------------------------------------------------------------------------
// In-memory file repository
// ---------------------------------------------------------------------------

type memFileRepo struct {
	mu        sync.Mutex
	nextID    int64
	rows      []models.Attachment
	clock     *memClock
	createErr error
}

func newMemFileRepo(clock *memClock) *memFileRepo {
	return &memFileRepo{clock: clock}
}

func (r *memFileRepo) Create(_ context.Context, a *models.Attachment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = r.clock.next()
	row := *a
	row.FileData = append([]byte(nil), a.FileData...)
	r.rows = append(r.rows, row)
	return nil
}

func (r *memFileRepo) createAt(a models.Attachment, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = at
	r.rows = append(r.rows, a)
}

func (r *memFileRepo) GetByID(_ context.Context, id int64) (*models.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			a := r.rows[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memFileRepo) Delete(_ context.Context, id int64) (int64, error) {
	return r.deleteWhere(func(a models.Attachment) bool { return a.ID == id }), nil
}

func (r *memFileRepo) DeleteFrom(_ context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	return r.deleteWhere(func(a models.Attachment) bool {
		return !a.CreatedAt.Before(cutoff) && sameConversation(a.ConversationID, conversationID)
	}), nil
}

func (r *memFileRepo) DeleteByConversation(_ context.Context, conversationID string) (int64, error) {
	return r.deleteWhere(func(a models.Attachment) bool {
		return a.ConversationID != nil && *a.ConversationID == conversationID
	}), nil
}

func (r *memFileRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	return r.deleteWhere(func(a models.Attachment) bool { return a.CreatedAt.Before(cutoff) }), nil
}

func (r *memFileRepo) DeleteAll(_ context.Context) (int64, error) {
	return r.deleteWhere(func(models.Attachment) bool { return true }), nil
}

func (r *memFileRepo) deleteWhere(match func(models.Attachment) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []models.Attachment
	var deleted int64
	for _, a := range r.rows {
		if match(a) {
			deleted++
		} else {
			kept = append(kept, a)
		}
	}
	r.rows = kept
	return deleted
}

func (r *memFileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func strPtr(s string) *string { return &s }
