package http

import (
	"context"
	"net/http"
	"strings"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OutboxFeed streams notifications as the notifier stores them.
type OutboxFeed interface {
	Subscribe(ctx context.Context) (<-chan entity.Notification, func())
}

type LiveOutboxHandler struct {
	feed   OutboxFeed
	logger *logger.Logger
}

func NewLiveOutboxHandler(feed OutboxFeed, logger *logger.Logger) *LiveOutboxHandler {
	return &LiveOutboxHandler{feed: feed, logger: logger}
}

// Stream godoc
// @Summary      Live notification feed (WebSocket)
// @Description  Pushes each stored notification as a JSON frame. Pass the access token as ?token= when headers cannot be set.
// @Tags         notifier
// @Security     BearerAuth
// @Param        recipient query string false "Only messages for this email"
// @Param        token query string false "Access token"
// @Success      101
// @Router       /admin/outbox/live [get]
func (h *LiveOutboxHandler) Stream(c *gin.Context) {
	recipient := strings.ToLower(strings.TrimSpace(c.Query("recipient")))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	userID := c.GetString("user_id")
	h.logger.Info("[NOTIFIER] Live feed opened by %s", userID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifications, stop := h.feed.Subscribe(ctx)
	defer stop()

	// Reads only detect the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("[NOTIFIER] Live feed closed by %s", userID)
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			if recipient != "" && n.Recipient != recipient {
				continue
			}
			if err := conn.WriteJSON(n); err != nil {
				h.logger.Warn("Failed to write WebSocket message: %v", err)
				return
			}
		}
	}
}
