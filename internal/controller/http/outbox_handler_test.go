package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleTask(task map[string]interface{}) error {
	return m.Called(task).Error(0)
}

func (m *MockNotificationUseCase) HandlePostPublished(ctx context.Context, task map[string]interface{}) (int, error) {
	args := m.Called(ctx, task)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationUseCase) HandleNewsletterSubscribed(ctx context.Context, task map[string]interface{}) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockNotificationUseCase) HandlePasswordReset(ctx context.Context, task map[string]interface{}) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockNotificationUseCase) Outbox(ctx context.Context, recipient string, limit int) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, recipient, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

type stubQueue struct {
	pending int
	err     error
}

func (s stubQueue) GetQueueLength() (int, error) { return s.pending, s.err }

func TestGetOutbox(t *testing.T) {
	mockUseCase := new(MockNotificationUseCase)
	handler := NewOutboxHandler(mockUseCase, stubQueue{}, logger.New())

	router := setupTestRouter()
	router.GET("/admin/outbox/:email", handler.GetOutbox)

	mockUseCase.On("Outbox", mock.Anything, "ana@example.com", 5).
		Return([]entity.Notification{{Recipient: "ana@example.com", Subject: "Novo artigo: Como estudar"}}, int64(3), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/outbox/ana@example.com?limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(3), response["total"])
	assert.Len(t, response["messages"], 1)
}

func TestQueueStatus(t *testing.T) {
	router := setupTestRouter()
	router.GET("/ok", NewOutboxHandler(new(MockNotificationUseCase), stubQueue{pending: 4}, logger.New()).QueueStatus)
	router.GET("/broken", NewOutboxHandler(new(MockNotificationUseCase), stubQueue{err: errors.New("channel closed")}, logger.New()).QueueStatus)
	router.GET("/none", NewOutboxHandler(new(MockNotificationUseCase), nil, logger.New()).QueueStatus)

	for path, want := range map[string]int{
		"/ok":     http.StatusOK,
		"/broken": http.StatusInternalServerError,
		"/none":   http.StatusServiceUnavailable,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, path)
	}
}
