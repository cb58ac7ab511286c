package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscribe_Created(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/newsletter/subscribe", handler.Subscribe)

	mockUseCase.On("Subscribe", mock.Anything, usecase.SubscribeInput{Email: "ana@example.com"}).
		Return(&entity.NewsletterSubscriber{ID: "s1", Email: "ana@example.com", IsActive: true, Source: entity.DefaultSubscriberSource}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/newsletter/subscribe", bytes.NewBufferString(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "website", response["source"])
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/newsletter/subscribe", handler.Subscribe)

	mockUseCase.On("Subscribe", mock.Anything, mock.Anything).Return(nil, entity.ErrAlreadySubscribed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/newsletter/subscribe", bytes.NewBufferString(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Este email já está inscrito na newsletter.", response["error"])
}

func TestListSubscribers_ActiveFilter(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/newsletter", handler.ListSubscribers)

	mockUseCase.On("List", mock.Anything).Return([]*entity.NewsletterSubscriber{{ID: "s1"}, {ID: "s2"}}, nil)
	mockUseCase.On("ListActive", mock.Anything).Return([]*entity.NewsletterSubscriber{{ID: "s1"}}, nil)

	for path, want := range map[string]int{
		"/admin/newsletter":             2,
		"/admin/newsletter?active=true": 1,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)

		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, want, path)
	}

	mockUseCase.AssertExpectations(t)
}

func TestUnsubscribe(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/newsletter/:id/unsubscribe", handler.Unsubscribe)
	router.DELETE("/admin/newsletter/:id", handler.DeleteSubscriber)

	mockUseCase.On("Unsubscribe", mock.Anything, "s1").Return(nil)
	mockUseCase.On("Delete", mock.Anything, "s2").Return(entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/newsletter/s1/unsubscribe", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/admin/newsletter/s2", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportSubscribers_Headers(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())
	handler.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	router := setupTestRouter()
	router.GET("/admin/newsletter/export", handler.ExportSubscribers)

	csv := "Email,Nome,Data de Inscrição,Ativo,Fonte\nana@example.com,Ana,10/03/2024,Sim,website"
	mockUseCase.On("ExportCSV", mock.Anything, mock.Anything).Return(csv, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/newsletter/export", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="newsletter-subscribers-2024-03-10.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, csv, w.Body.String())
}

func TestExportSubscribers_Failure(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/newsletter/export", handler.ExportSubscribers)

	mockUseCase.On("ExportCSV", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/newsletter/export", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
