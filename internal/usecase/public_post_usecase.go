package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/logger"
)

const (
	featuredLimit = 3
	recentLimit   = 12
	popularLimit  = 5
	relatedLimit  = 4
)

// PublicPostUseCase serves the reader-facing site; it only ever returns
// published posts.
type PublicPostUseCase interface {
	Featured(ctx context.Context) ([]*entity.Post, error)
	Recent(ctx context.Context) ([]*entity.Post, error)
	Popular(ctx context.Context) ([]*entity.Post, error)
	ByCategory(ctx context.Context, categorySlug string) ([]*entity.Post, error)
	BySlug(ctx context.Context, slug string) (*entity.Post, error)
	Related(ctx context.Context, postID, categoryID string) ([]*entity.Post, error)
	Search(ctx context.Context, query string) ([]*entity.Post, error)
}

type publicPostUseCase struct {
	postRepo     persistent.PostRepository
	categoryRepo persistent.CategoryRepository
	profileRepo  persistent.ProfileRepository
	cache        cache.Cache
	logger       *logger.Logger
}

func NewPublicPostUseCase(
	postRepo persistent.PostRepository,
	categoryRepo persistent.CategoryRepository,
	profileRepo persistent.ProfileRepository,
	cache cache.Cache,
	logger *logger.Logger,
) PublicPostUseCase {
	return &publicPostUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *publicPostUseCase) Featured(ctx context.Context) ([]*entity.Post, error) {
	return uc.list(ctx, cache.Key(nsPublicPosts, "featured"), persistent.PostQuery{
		OrderBy: persistent.OrderByPublished,
		Limit:   featuredLimit,
	})
}

func (uc *publicPostUseCase) Recent(ctx context.Context) ([]*entity.Post, error) {
	return uc.list(ctx, cache.Key(nsPublicPosts, "recent"), persistent.PostQuery{
		OrderBy: persistent.OrderByPublished,
		Limit:   recentLimit,
	})
}

// Popular reads straight from the store: every view reorders it and views
// do not invalidate the public namespace.
func (uc *publicPostUseCase) Popular(ctx context.Context) ([]*entity.Post, error) {
	return uc.load(ctx, persistent.PostQuery{
		OrderBy: persistent.OrderByViews,
		Limit:   popularLimit,
	})
}

func (uc *publicPostUseCase) ByCategory(ctx context.Context, categorySlug string) ([]*entity.Post, error) {
	category, err := uc.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categorySlug, err)
	}

	return uc.list(ctx, cache.Key(nsPublicPosts, "category", categorySlug), persistent.PostQuery{
		CategoryID: category.ID,
		OrderBy:    persistent.OrderByPublished,
	})
}

// BySlug returns a published post with author and tags, and counts a view
// in the background.
func (uc *publicPostUseCase) BySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := uc.postRepo.GetBySlug(ctx, slug, entity.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", slug, err)
	}

	attachAuthors(ctx, uc.profileRepo, uc.logger, []*entity.Post{post})
	attachTags(ctx, uc.postRepo, uc.logger, post)

	go uc.incrementViews(post.ID)

	return post, nil
}

func (uc *publicPostUseCase) Related(ctx context.Context, postID, categoryID string) ([]*entity.Post, error) {
	return uc.list(ctx, cache.Key(nsPublicPosts, "related", postID, categoryID), persistent.PostQuery{
		CategoryID: categoryID,
		ExcludeID:  postID,
		OrderBy:    persistent.OrderByPublished,
		Limit:      relatedLimit,
	})
}

// Search matches the query against title and excerpt. An empty query
// behaves like Recent without the limit.
func (uc *publicPostUseCase) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	query = strings.TrimSpace(query)
	return uc.list(ctx, cache.Key(nsPublicPosts, "search", strings.ToLower(query)), persistent.PostQuery{
		Search:  query,
		OrderBy: persistent.OrderByPublished,
	})
}

func (uc *publicPostUseCase) list(ctx context.Context, key string, q persistent.PostQuery) ([]*entity.Post, error) {
	return cached(ctx, uc.cache, uc.logger, key, func() ([]*entity.Post, error) {
		return uc.load(ctx, q)
	})
}

func (uc *publicPostUseCase) load(ctx context.Context, q persistent.PostQuery) ([]*entity.Post, error) {
	q.Status = entity.StatusPublished

	posts, err := uc.postRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list public posts: %w", err)
	}
	attachAuthors(ctx, uc.profileRepo, uc.logger, posts)
	return posts, nil
}

func (uc *publicPostUseCase) incrementViews(postID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.postRepo.IncrementViews(ctx, postID); err != nil {
		uc.logger.Error("Failed to increment views for post %s: %v", postID, err)
	}
}
