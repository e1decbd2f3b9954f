package api

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/models"
	redisclient "github.com/akramas2005/backend-as-space/internal/redis"
	"github.com/akramas2005/backend-as-space/internal/service"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestContext(method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestRedis(t *testing.T) *redisclient.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redisclient.NewClient("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("connecting to miniredis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

// mockMessageRepo implements database.MessageRepository.
type mockMessageRepo struct {
	CreateFn               func(ctx context.Context, msg *models.Message) error
	GetByIDFn              func(ctx context.Context, id int64) (*models.Message, error)
	ListFn                 func(ctx context.Context, conversationID *string, limit int) ([]models.Message, error)
	DeleteFn               func(ctx context.Context, id int64) (int64, error)
	DeleteFromFn           func(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error)
	DeleteByConversationFn func(ctx context.Context, conversationID string) (int64, error)
	DeleteOlderThanFn      func(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAllFn            func(ctx context.Context) (int64, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	msg.ID = 1
	msg.CreatedAt = time.Now()
	return nil
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageRepo) List(ctx context.Context, conversationID *string, limit int) ([]models.Message, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, conversationID, limit)
	}
	return nil, nil
}

func (m *mockMessageRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return 1, nil
}

func (m *mockMessageRepo) DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	if m.DeleteFromFn != nil {
		return m.DeleteFromFn(ctx, cutoff, conversationID)
	}
	return 0, nil
}

func (m *mockMessageRepo) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	if m.DeleteByConversationFn != nil {
		return m.DeleteByConversationFn(ctx, conversationID)
	}
	return 0, nil
}

func (m *mockMessageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFn != nil {
		return m.DeleteOlderThanFn(ctx, cutoff)
	}
	return 0, nil
}

func (m *mockMessageRepo) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return 0, nil
}

// mockFileRepo implements database.FileRepository.
type mockFileRepo struct {
	CreateFn               func(ctx context.Context, a *models.Attachment) error
	GetByIDFn              func(ctx context.Context, id int64) (*models.Attachment, error)
	DeleteFn               func(ctx context.Context, id int64) (int64, error)
	DeleteFromFn           func(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error)
	DeleteByConversationFn func(ctx context.Context, conversationID string) (int64, error)
	DeleteOlderThanFn      func(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAllFn            func(ctx context.Context) (int64, error)
}

func (m *mockFileRepo) Create(ctx context.Context, a *models.Attachment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	a.ID = 1
	a.CreatedAt = time.Now()
	return nil
}

func (m *mockFileRepo) GetByID(ctx context.Context, id int64) (*models.Attachment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFileRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return 1, nil
}

func (m *mockFileRepo) DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	if m.DeleteFromFn != nil {
		return m.DeleteFromFn(ctx, cutoff, conversationID)
	}
	return 0, nil
}

func (m *mockFileRepo) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	if m.DeleteByConversationFn != nil {
		return m.DeleteByConversationFn(ctx, conversationID)
	}
	return 0, nil
}

func (m *mockFileRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFn != nil {
		return m.DeleteOlderThanFn(ctx, cutoff)
	}
	return 0, nil
}

func (m *mockFileRepo) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// Service constructors over mocks
// ---------------------------------------------------------------------------

func newMessageHandler(messages *mockMessageRepo) *MessageHandler {
	return NewMessageHandler(service.NewMessageService(messages, testLogger()))
}

func newFileHandler(files *mockFileRepo, messages *mockMessageRepo) *FileHandler {
	return NewFileHandler(service.NewAttachmentService(files, messages, "http://localhost:8080", testLogger()))
}

func newDeleteHandler(messages *mockMessageRepo, files *mockFileRepo) *DeleteHandler {
	return NewDeleteHandler(
		service.NewDeletionService(messages, files, testLogger()),
		service.NewRetentionService(messages, files, testLogger()),
	)
}
