package usecase

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"imersao-completa/pkg/logger"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriters(io.Discard, io.Discard)
}

// taskRecorder captures published tasks on a buffered channel.
type taskRecorder struct {
	tasks chan map[string]interface{}
	err   error
}

func newTaskRecorder() *taskRecorder {
	return &taskRecorder{tasks: make(chan map[string]interface{}, 8)}
}

func (r *taskRecorder) PublishNotificationTask(task map[string]interface{}) error {
	r.tasks <- task
	return r.err
}

func (r *taskRecorder) next(t *testing.T) map[string]interface{} {
	t.Helper()
	select {
	case task := <-r.tasks:
		return task
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a published task")
		return nil
	}
}

func strPtr(s string) *string { return &s }

// memoryCache is an in-process cache.Cache that records invalidations.
type memoryCache struct {
	mu          sync.Mutex
	items       map[string][]byte
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, namespaces ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ns := range namespaces {
		m.invalidated = append(m.invalidated, ns)
		for key := range m.items {
			if strings.HasPrefix(key, ns+":") {
				delete(m.items, key)
			}
		}
	}
	return nil
}
