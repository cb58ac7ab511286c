package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/queue"
)

var csvHeader = []string{"Email", "Nome", "Data de Inscrição", "Ativo", "Fonte"}

type SubscribeInput struct {
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Source string  `json:"source"`
}

type NewsletterUseCase interface {
	List(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
	ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
	Subscribe(ctx context.Context, input SubscribeInput) (*entity.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, w io.Writer) error
}

type newsletterUseCase struct {
	newsletterRepo persistent.NewsletterRepository
	cache          cache.Cache
	publisher      TaskPublisher
	logger         *logger.Logger
	now            func() time.Time
	location       *time.Location
}

func NewNewsletterUseCase(
	newsletterRepo persistent.NewsletterRepository,
	cache cache.Cache,
	publisher TaskPublisher,
	logger *logger.Logger,
) NewsletterUseCase {
	return &newsletterUseCase{
		newsletterRepo: newsletterRepo,
		cache:          cache,
		publisher:      publisher,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
		location:       time.Local,
	}
}

func (uc *newsletterUseCase) List(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	return cached(ctx, uc.cache, uc.logger, cache.Key(nsSubscribers, "all"), func() ([]*entity.NewsletterSubscriber, error) {
		subscribers, err := uc.newsletterRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscribers: %w", err)
		}
		return subscribers, nil
	})
}

func (uc *newsletterUseCase) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	subscribers, err := uc.newsletterRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscribers: %w", err)
	}
	return subscribers, nil
}

func (uc *newsletterUseCase) Subscribe(ctx context.Context, input SubscribeInput) (*entity.NewsletterSubscriber, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", entity.ErrInvalidInput)
	}

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = entity.DefaultSubscriberSource
	}

	subscriber := &entity.NewsletterSubscriber{
		Email:    email,
		Name:     nullable(input.Name),
		IsActive: true,
		Source:   source,
	}

	if err := uc.newsletterRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, entity.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	uc.logger.Info("Newsletter subscription from %s (source=%s)", subscriber.Email, subscriber.Source)
	uc.invalidate(ctx)

	if uc.publisher != nil {
		task := map[string]interface{}{
			"type":          queue.TaskNewsletterSubscribed,
			"subscriber_id": subscriber.ID,
			"email":         subscriber.Email,
			"priority":      3,
		}
		go func() {
			if err := uc.publisher.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to queue welcome email for %s: %v", subscriber.Email, err)
			}
		}()
	}

	return subscriber, nil
}

func (uc *newsletterUseCase) Unsubscribe(ctx context.Context, id string) error {
	if err := uc.newsletterRepo.Unsubscribe(ctx, id, uc.now()); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *newsletterUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.newsletterRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}

	uc.invalidate(ctx)
	return nil
}

// ExportCSV writes every subscriber, newest first.
func (uc *newsletterUseCase) ExportCSV(ctx context.Context, w io.Writer) error {
	subscribers, err := uc.List(ctx)
	if err != nil {
		return err
	}
	return WriteSubscribersCSV(w, subscribers, uc.location)
}

func (uc *newsletterUseCase) invalidate(ctx context.Context) {
	invalidate(ctx, uc.cache, uc.logger, nsSubscribers, nsDashboard)
}

// WriteSubscribersCSV renders subscribers as comma-joined rows with a
// pt-BR date column. Fields are written verbatim without quoting.
func WriteSubscribersCSV(w io.Writer, subscribers []*entity.NewsletterSubscriber, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	lines := make([]string, 0, len(subscribers)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, sub := range subscribers {
		name := ""
		if sub.Name != nil {
			name = *sub.Name
		}
		active := "Não"
		if sub.IsActive {
			active = "Sim"
		}
		lines = append(lines, strings.Join([]string{
			sub.Email,
			name,
			sub.SubscribedAt.In(loc).Format("02/01/2006"),
			active,
			sub.Source,
		}, ","))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// ExportFilename names the export after the UTC date of now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("newsletter-subscribers-%s.csv", now.UTC().Format("2006-01-02"))
}
