package persistent

import (
	"context"
	"strings"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
)

//go:generate mockgen -source=newsletter_repository.go -destination=mocks/newsletter_repository.go -package=mocks

type NewsletterRepository interface {
	List(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
	ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
	Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
	Unsubscribe(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) List(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	return r.find(r.db.WithContext(ctx).Order("subscribed_at DESC"))
}

func (r *newsletterRepository) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	return r.find(r.db.WithContext(ctx).Where("is_active = ?", true).Order("subscribed_at DESC"))
}

func (r *newsletterRepository) find(query *gorm.DB) ([]*entity.NewsletterSubscriber, error) {
	var subscriberModels []model.NewsletterSubscriberModel
	if err := query.Find(&subscriberModels).Error; err != nil {
		return nil, err
	}

	subscribers := make([]*entity.NewsletterSubscriber, len(subscriberModels))
	for i := range subscriberModels {
		subscribers[i] = ToSubscriberEntity(&subscriberModels[i])
	}
	return subscribers, nil
}

func (r *newsletterRepository) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	subscriberModel := ToSubscriberModel(subscriber)
	subscriberModel.Email = strings.ToLower(strings.TrimSpace(subscriberModel.Email))

	if err := r.db.WithContext(ctx).Create(subscriberModel).Error; err != nil {
		return translateError(err)
	}
	*subscriber = *ToSubscriberEntity(subscriberModel)
	return nil
}

func (r *newsletterRepository) Unsubscribe(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.NewsletterSubscriberModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "unsubscribed_at": at})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.NewsletterSubscriberModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
