package persistent

import (
	"context"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
)

//go:generate mockgen -source=stats_repository.go -destination=mocks/stats_repository.go -package=mocks

// PostCounts groups post totals by status.
type PostCounts struct {
	Total     int64
	Published int64
	Draft     int64
	Views     int64
}

type SubscriberCounts struct {
	Total  int64
	Active int64
}

type StatsRepository interface {
	PostCounts(ctx context.Context) (*PostCounts, error)
	CountCategories(ctx context.Context) (int64, error)
	CountTags(ctx context.Context) (int64, error)
	SubscriberCounts(ctx context.Context) (*SubscriberCounts, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) PostCounts(ctx context.Context) (*PostCounts, error) {
	var counts PostCounts
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status = ?) AS published, "+
				"COUNT(*) FILTER (WHERE status = ?) AS draft, "+
				"COALESCE(SUM(views_count), 0) AS views",
			string(entity.StatusPublished), string(entity.StatusDraft),
		).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *statsRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountTags(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TagModel{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) SubscriberCounts(ctx context.Context) (*SubscriberCounts, error) {
	var counts SubscriberCounts
	err := r.db.WithContext(ctx).Model(&model.NewsletterSubscriberModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_active) AS active").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
