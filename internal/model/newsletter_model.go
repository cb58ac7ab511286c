package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriberModel struct {
	ID             string  `gorm:"type:uuid;primary_key"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name           *string `gorm:"type:varchar(255)"`
	IsActive       bool    `gorm:"not null;default:true"`
	Source         string  `gorm:"type:varchar(50);not null;default:'website'"`
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
	CreatedAt      time.Time
}

func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

func (n *NewsletterSubscriberModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.SubscribedAt.IsZero() {
		n.SubscribedAt = time.Now().UTC()
	}
	return nil
}
