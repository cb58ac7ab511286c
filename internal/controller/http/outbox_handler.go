package http

import (
	"net/http"
	"strconv"

	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
)

// QueueInspector reports how many tasks are waiting to be consumed.
type QueueInspector interface {
	GetQueueLength() (int, error)
}

// OutboxHandler exposes the notifier's rendered messages and queue depth.
type OutboxHandler struct {
	notificationUseCase usecase.NotificationUseCase
	queue               QueueInspector
	logger              *logger.Logger
}

func NewOutboxHandler(notificationUseCase usecase.NotificationUseCase, queue QueueInspector, logger *logger.Logger) *OutboxHandler {
	return &OutboxHandler{
		notificationUseCase: notificationUseCase,
		queue:               queue,
		logger:              logger,
	}
}

// GetOutbox godoc
// @Summary      Messages held for a recipient
// @Tags         notifier
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Recipient email"
// @Param        limit query int false "Max messages" default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/outbox/{email} [get]
func (h *OutboxHandler) GetOutbox(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, total, err := h.notificationUseCase.Outbox(c.Request.Context(), c.Param("email"), limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to read outbox")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"total":    total,
	})
}

// QueueStatus godoc
// @Summary      Pending notification tasks
// @Tags         notifier
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /admin/queue [get]
func (h *OutboxHandler) QueueStatus(c *gin.Context) {
	if h.queue == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Queue not connected"})
		return
	}

	pending, err := h.queue.GetQueueLength()
	if err != nil {
		respondError(c, h.logger, err, "Failed to inspect queue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending})
}
