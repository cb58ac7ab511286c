package entity

import "time"

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusScheduled PostStatus = "scheduled"
)

func (s PostStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled:
		return true
	}
	return false
}

type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content"`
	FeaturedImage   *string    `json:"featured_image"`
	CategoryID      *string    `json:"category_id"`
	AuthorID        *string    `json:"author_id"`
	Status          PostStatus `json:"status"`
	ReadingTime     int        `json:"reading_time"`
	ViewsCount      int        `json:"views_count"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Category *Category `json:"category"`
	Author   *Profile  `json:"author"`
	Tags     []Tag     `json:"tags,omitempty"`
}
