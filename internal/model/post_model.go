package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID              string         `gorm:"type:uuid;primary_key"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Slug            string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Excerpt         *string        `gorm:"type:text"`
	Content         *string        `gorm:"type:text"`
	FeaturedImage   *string        `gorm:"type:text"`
	CategoryID      *string        `gorm:"type:uuid;index"`
	AuthorID        *string        `gorm:"type:uuid;index"`
	Status          string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	ReadingTime     int            `gorm:"not null;default:0"`
	ViewsCount      int            `gorm:"not null;default:0"`
	MetaTitle       *string        `gorm:"type:varchar(255)"`
	MetaDescription *string        `gorm:"type:text"`
	MetaKeywords    *string        `gorm:"type:text"`
	PublishedAt     *time.Time     `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Category        *CategoryModel `gorm:"foreignKey:CategoryID"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PostTagModel is the post_tags join row.
type PostTagModel struct {
	PostID    string `gorm:"type:uuid;primaryKey"`
	TagID     string `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

func (PostTagModel) TableName() string {
	return "post_tags"
}
