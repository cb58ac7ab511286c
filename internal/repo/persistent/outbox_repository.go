package persistent

//go:generate mockgen -source=outbox_repository.go -destination=mocks/outbox_repository.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"imersao-completa/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	outboxKeyPrefix = "outbox:"
	outboxChannel   = "outbox"
	outboxMaxLen    = 100
	outboxRetention = 30 * 24 * time.Hour
)

// OutboxRepository keeps rendered notifications per recipient until a
// mailer drains them.
type OutboxRepository interface {
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, recipient string, limit int) ([]entity.Notification, error)
	Len(ctx context.Context, recipient string) (int64, error)
}

type outboxRepository struct {
	client *redis.Client
}

func NewOutboxRepository(client *redis.Client) OutboxRepository {
	return &outboxRepository{client: client}
}

func outboxKey(recipient string) string {
	return outboxKeyPrefix + recipient
}

func (r *outboxRepository) Push(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := outboxKey(n.Recipient)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, outboxMaxLen-1)
	pipe.Expire(ctx, key, outboxRetention)
	pipe.Publish(ctx, outboxChannel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	return nil
}

func (r *outboxRepository) List(ctx context.Context, recipient string, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = outboxMaxLen
	}

	raw, err := r.client.LRange(ctx, outboxKey(recipient), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read outbox: %w", err)
	}

	out := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err == nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *outboxRepository) Len(ctx context.Context, recipient string) (int64, error) {
	return r.client.LLen(ctx, outboxKey(recipient)).Result()
}

// OutboxFeed relays notifications as Push publishes them.
type OutboxFeed struct {
	client *redis.Client
}

func NewOutboxFeed(client *redis.Client) *OutboxFeed {
	return &OutboxFeed{client: client}
}

// Subscribe streams decoded notifications until stop is called or ctx ends.
// The returned channel is closed once the subscription is gone.
func (f *OutboxFeed) Subscribe(ctx context.Context) (<-chan entity.Notification, func()) {
	pubsub := f.client.Subscribe(ctx, outboxChannel)
	out := make(chan entity.Notification, 16)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var n entity.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				continue
			}
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { pubsub.Close() }
}
