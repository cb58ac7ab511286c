package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/queue"
)

// NotificationUseCase turns queued tasks into per-recipient notifications.
type NotificationUseCase interface {
	HandleTask(task map[string]interface{}) error
	HandlePostPublished(ctx context.Context, task map[string]interface{}) (int, error)
	HandleNewsletterSubscribed(ctx context.Context, task map[string]interface{}) error
	HandlePasswordReset(ctx context.Context, task map[string]interface{}) error
	Outbox(ctx context.Context, recipient string, limit int) ([]entity.Notification, int64, error)
}

const defaultOutboxLimit = 20

type notificationUseCase struct {
	subscriberRepo persistent.NewsletterRepository
	outbox         persistent.OutboxRepository
	siteURL        string
	logger         *logger.Logger
}

func NewNotificationUseCase(subscriberRepo persistent.NewsletterRepository, outbox persistent.OutboxRepository, siteURL string, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		subscriberRepo: subscriberRepo,
		outbox:         outbox,
		siteURL:        strings.TrimRight(siteURL, "/"),
		logger:         logger,
	}
}

// HandleTask dispatches on the task type. Unknown types are dropped.
func (uc *notificationUseCase) HandleTask(task map[string]interface{}) error {
	ctx := context.Background()
	taskType, _ := task["type"].(string)

	switch taskType {
	case queue.TaskPostPublished:
		_, err := uc.HandlePostPublished(ctx, task)
		return err
	case queue.TaskNewsletterSubscribed:
		return uc.HandleNewsletterSubscribed(ctx, task)
	case queue.TaskPasswordReset:
		return uc.HandlePasswordReset(ctx, task)
	default:
		uc.logger.Warn("[NOTIFIER] Unknown task type %q, dropping", taskType)
		return nil
	}
}

// HandlePostPublished fans the announcement out to every active subscriber
// and reports how many were queued.
func (uc *notificationUseCase) HandlePostPublished(ctx context.Context, task map[string]interface{}) (int, error) {
	postID, _ := task["post_id"].(string)
	slug, _ := task["slug"].(string)
	title, _ := task["title"].(string)

	if postID == "" || slug == "" {
		uc.logger.Error("[NOTIFIER] Invalid post_published task: %+v", task)
		return 0, fmt.Errorf("invalid task: missing post_id or slug")
	}

	subscribers, err := uc.subscriberRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load subscribers: %w", err)
	}

	link := uc.siteURL + "/artigo/" + slug
	sent := 0
	for _, sub := range subscribers {
		n := &entity.Notification{
			Recipient: sub.Email,
			Subject:   "Novo artigo: " + title,
			Body:      fmt.Sprintf("Olá %s, acabamos de publicar \"%s\". Leia em %s", greetingName(sub.Name), title, link),
			Type:      queue.TaskPostPublished,
			Data:      map[string]interface{}{"post_id": postID, "url": link},
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.outbox.Push(ctx, n); err != nil {
			uc.logger.Error("[NOTIFIER] Failed to queue post %s for %s: %v", postID, sub.Email, err)
			continue
		}
		sent++
	}

	uc.logger.Info("[NOTIFIER] Post %s announced: sent=%d, subscribers=%d", postID, sent, len(subscribers))
	return sent, nil
}

func (uc *notificationUseCase) HandleNewsletterSubscribed(ctx context.Context, task map[string]interface{}) error {
	email, _ := task["email"].(string)
	if email == "" {
		uc.logger.Error("[NOTIFIER] Invalid newsletter_subscribed task: %+v", task)
		return fmt.Errorf("invalid task: missing email")
	}

	n := &entity.Notification{
		Recipient: email,
		Subject:   "Bem-vindo à newsletter da Imersão Completa",
		Body:      fmt.Sprintf("Obrigado por se inscrever! Você receberá nossos novos artigos. Visite %s", uc.siteURL),
		Type:      queue.TaskNewsletterSubscribed,
		Data:      map[string]interface{}{"subscriber_id": task["subscriber_id"]},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outbox.Push(ctx, n); err != nil {
		return fmt.Errorf("failed to queue welcome message: %w", err)
	}

	uc.logger.Info("[NOTIFIER] Welcome message queued for %s", email)
	return nil
}

func (uc *notificationUseCase) HandlePasswordReset(ctx context.Context, task map[string]interface{}) error {
	email, _ := task["email"].(string)
	token, _ := task["token"].(string)
	if email == "" || token == "" {
		uc.logger.Error("[NOTIFIER] Invalid password_reset task for %q", email)
		return fmt.Errorf("invalid task: missing email or token")
	}

	link := uc.siteURL + "/redefinir-senha?token=" + token
	n := &entity.Notification{
		Recipient: email,
		Subject:   "Redefinição de senha",
		Body:      "Para redefinir sua senha acesse " + link,
		Type:      queue.TaskPasswordReset,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outbox.Push(ctx, n); err != nil {
		return fmt.Errorf("failed to queue password reset: %w", err)
	}

	uc.logger.Info("[NOTIFIER] Password reset queued for %s", email)
	return nil
}

// Outbox returns the newest messages held for recipient and the total held.
func (uc *notificationUseCase) Outbox(ctx context.Context, recipient string, limit int) ([]entity.Notification, int64, error) {
	recipient = strings.ToLower(strings.TrimSpace(recipient))
	if recipient == "" {
		return nil, 0, fmt.Errorf("%w: recipient is required", entity.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultOutboxLimit
	}

	messages, err := uc.outbox.List(ctx, recipient, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read outbox: %w", err)
	}
	total, err := uc.outbox.Len(ctx, recipient)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count outbox: %w", err)
	}
	return messages, total, nil
}

func greetingName(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return "leitor"
	}
	return strings.TrimSpace(*name)
}
