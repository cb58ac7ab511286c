package usecase

import (
	"context"
	"fmt"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type StatsUseCase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}

type statsUseCase struct {
	statsRepo persistent.StatsRepository
	cache     cache.Cache
	logger    *logger.Logger
}

func NewStatsUseCase(statsRepo persistent.StatsRepository, cache cache.Cache, logger *logger.Logger) StatsUseCase {
	return &statsUseCase{
		statsRepo: statsRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Dashboard runs the four aggregate queries concurrently.
func (uc *statsUseCase) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	return cached(ctx, uc.cache, uc.logger, cache.Key(nsDashboard, "summary"), func() (*entity.DashboardStats, error) {
		var (
			posts       *persistent.PostCounts
			subscribers *persistent.SubscriberCounts
			categories  int64
			tags        int64
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			posts, err = uc.statsRepo.PostCounts(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = uc.statsRepo.CountCategories(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			tags, err = uc.statsRepo.CountTags(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			subscribers, err = uc.statsRepo.SubscriberCounts(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
		}

		return &entity.DashboardStats{
			TotalPosts:        posts.Total,
			PublishedPosts:    posts.Published,
			DraftPosts:        posts.Draft,
			TotalCategories:   categories,
			TotalTags:         tags,
			TotalViews:        posts.Views,
			TotalSubscribers:  subscribers.Total,
			ActiveSubscribers: subscribers.Active,
		}, nil
	})
}
