package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLevelsGoToTheirWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriters(&out, &errOut)

	logger.Info("post %s published", "como-estudar")
	logger.Warn("cache miss for %s", "public-posts:recent")
	logger.Error("failed to increment views: %v", "timeout")

	assert.Contains(t, out.String(), "[INFO] post como-estudar published")
	assert.Contains(t, out.String(), "[WARN] cache miss for public-posts:recent")
	assert.NotContains(t, out.String(), "[ERROR]")
	assert.Contains(t, errOut.String(), "[ERROR] failed to increment views: timeout")
}

func TestLogger_Formatting(t *testing.T) {
	var out bytes.Buffer
	logger := NewWithWriters(&out, &out)

	logger.Info("User %s logged in with ID %d", "ana", 123)

	assert.Contains(t, out.String(), "User ana logged in with ID 123")
}
