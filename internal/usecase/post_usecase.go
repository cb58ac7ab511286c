package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/content"
	"imersao-completa/pkg/logger"
	"imersao-completa/pkg/queue"

	"github.com/google/uuid"
)

type PostFilters struct {
	Status     entity.PostStatus `form:"status"`
	CategoryID string            `form:"category_id"`
	Search     string            `form:"search"`
}

type CreatePostInput struct {
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         *string           `json:"excerpt"`
	Content         *string           `json:"content"`
	FeaturedImage   *string           `json:"featured_image"`
	CategoryID      *string           `json:"category_id"`
	Status          entity.PostStatus `json:"status"`
	MetaTitle       *string           `json:"meta_title"`
	MetaDescription *string           `json:"meta_description"`
	MetaKeywords    *string           `json:"meta_keywords"`
	TagIDs          []string          `json:"tag_ids"`
}

// UpdatePostInput carries a partial update; nil fields are left alone.
// TagIDs replaces the tag set wholesale when present, even if empty.
type UpdatePostInput struct {
	Title           *string            `json:"title"`
	Slug            *string            `json:"slug"`
	Excerpt         *string            `json:"excerpt"`
	Content         *string            `json:"content"`
	FeaturedImage   *string            `json:"featured_image"`
	CategoryID      *string            `json:"category_id"`
	Status          *entity.PostStatus `json:"status"`
	MetaTitle       *string            `json:"meta_title"`
	MetaDescription *string            `json:"meta_description"`
	MetaKeywords    *string            `json:"meta_keywords"`
	TagIDs          *[]string          `json:"tag_ids"`
}

type PostUseCase interface {
	List(ctx context.Context, filters PostFilters) ([]*entity.Post, error)
	Get(ctx context.Context, idOrSlug string) (*entity.Post, error)
	Create(ctx context.Context, authorID string, input CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (*entity.Post, error)
	Unpublish(ctx context.Context, id string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	profileRepo persistent.ProfileRepository
	cache       cache.Cache
	publisher   TaskPublisher
	logger      *logger.Logger
	now         func() time.Time
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	profileRepo persistent.ProfileRepository,
	cache cache.Cache,
	publisher TaskPublisher,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (uc *postUseCase) List(ctx context.Context, filters PostFilters) ([]*entity.Post, error) {
	key := cache.Key(nsPosts, "list", string(filters.Status), filters.CategoryID, filters.Search)

	return cached(ctx, uc.cache, uc.logger, key, func() ([]*entity.Post, error) {
		posts, err := uc.postRepo.List(ctx, persistent.PostQuery{
			Status:     filters.Status,
			CategoryID: filters.CategoryID,
			Search:     strings.TrimSpace(filters.Search),
			OrderBy:    persistent.OrderByCreated,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list posts: %w", err)
		}
		attachAuthors(ctx, uc.profileRepo, uc.logger, posts)
		return posts, nil
	})
}

// Get looks the post up by id first and then by slug. A missing post
// yields (nil, nil).
func (uc *postUseCase) Get(ctx context.Context, idOrSlug string) (*entity.Post, error) {
	var post *entity.Post
	var err error

	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		post, err = uc.postRepo.GetByID(ctx, idOrSlug)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("failed to get post: %w", err)
		}
	}

	if post == nil {
		post, err = uc.postRepo.GetBySlug(ctx, idOrSlug, "")
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get post: %w", err)
		}
	}

	attachAuthors(ctx, uc.profileRepo, uc.logger, []*entity.Post{post})
	attachTags(ctx, uc.postRepo, uc.logger, post)
	return post, nil
}

func (uc *postUseCase) Create(ctx context.Context, authorID string, input CreatePostInput) (*entity.Post, error) {
	if authorID == "" {
		return nil, entity.ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrInvalidInput)
	}

	slug, err := slugFor(input.Slug, title)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidInput, status)
	}

	readingTime := 0
	if input.Content != nil && *input.Content != "" {
		readingTime = content.ReadingTime(*input.Content)
	}

	post := &entity.Post{
		Title:           title,
		Slug:            slug,
		Excerpt:         nullable(input.Excerpt),
		Content:         input.Content,
		FeaturedImage:   nullable(input.FeaturedImage),
		CategoryID:      nullable(input.CategoryID),
		AuthorID:        &authorID,
		Status:          status,
		ReadingTime:     readingTime,
		MetaTitle:       nullable(input.MetaTitle),
		MetaDescription: nullable(input.MetaDescription),
		MetaKeywords:    nullable(input.MetaKeywords),
	}
	if status == entity.StatusPublished {
		publishedAt := uc.now()
		post.PublishedAt = &publishedAt
	}

	if err := uc.postRepo.Create(ctx, post, input.TagIDs); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Post created: %s (%s)", post.Slug, post.Status)
	uc.invalidate(ctx)

	if post.Status == entity.StatusPublished {
		uc.notifyPublished(post)
	}

	return post, nil
}

func (uc *postUseCase) Update(ctx context.Context, id string, input UpdatePostInput) (*entity.Post, error) {
	changes := make(map[string]interface{})

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", entity.ErrInvalidInput)
		}
		changes["title"] = title
	}

	switch {
	case input.Slug != nil && strings.TrimSpace(*input.Slug) != "":
		slug, err := slugFor(*input.Slug, "")
		if err != nil {
			return nil, err
		}
		changes["slug"] = slug
	case input.Title != nil:
		if slug := content.Slug(*input.Title); slug != "" {
			changes["slug"] = slug
		}
	}

	if input.Content != nil {
		changes["content"] = *input.Content
		if *input.Content != "" {
			changes["reading_time"] = content.ReadingTime(*input.Content)
		}
	}
	if input.Excerpt != nil {
		changes["excerpt"] = columnValue(input.Excerpt)
	}
	if input.FeaturedImage != nil {
		changes["featured_image"] = columnValue(input.FeaturedImage)
	}
	if input.CategoryID != nil {
		changes["category_id"] = columnValue(input.CategoryID)
	}
	if input.MetaTitle != nil {
		changes["meta_title"] = columnValue(input.MetaTitle)
	}
	if input.MetaDescription != nil {
		changes["meta_description"] = columnValue(input.MetaDescription)
	}
	if input.MetaKeywords != nil {
		changes["meta_keywords"] = columnValue(input.MetaKeywords)
	}

	becamePublished := false
	if input.Status != nil {
		status := *input.Status
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidInput, status)
		}

		current, err := uc.postRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load post: %w", err)
		}

		changes["status"] = string(status)
		switch {
		case status == entity.StatusPublished && current.Status != entity.StatusPublished:
			changes["published_at"] = uc.now()
			becamePublished = true
		case status == entity.StatusDraft:
			changes["published_at"] = nil
		}
	}

	post, err := uc.postRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if input.TagIDs != nil {
		if err := uc.postRepo.ReplaceTags(ctx, id, *input.TagIDs); err != nil {
			return nil, fmt.Errorf("failed to update post tags: %w", err)
		}
	}

	uc.invalidate(ctx)

	if becamePublished {
		uc.notifyPublished(post)
	}

	return post, nil
}

func (uc *postUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.logger.Info("Post deleted: %s", id)
	uc.invalidate(ctx)
	return nil
}

// Publish stamps published_at with the current time, including on re-publish.
func (uc *postUseCase) Publish(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.Update(ctx, id, map[string]interface{}{
		"status":       string(entity.StatusPublished),
		"published_at": uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	uc.logger.Info("Post published: %s", post.Slug)
	uc.invalidate(ctx)
	uc.notifyPublished(post)
	return post, nil
}

func (uc *postUseCase) Unpublish(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.Update(ctx, id, map[string]interface{}{
		"status":       string(entity.StatusDraft),
		"published_at": nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unpublish post: %w", err)
	}

	uc.logger.Info("Post unpublished: %s", post.Slug)
	uc.invalidate(ctx)
	return post, nil
}

func (uc *postUseCase) invalidate(ctx context.Context) {
	invalidate(ctx, uc.cache, uc.logger, nsPosts, nsPublicPosts, nsDashboard)
}

func (uc *postUseCase) notifyPublished(post *entity.Post) {
	if uc.publisher == nil {
		return
	}

	task := map[string]interface{}{
		"type":     queue.TaskPostPublished,
		"post_id":  post.ID,
		"slug":     post.Slug,
		"title":    post.Title,
		"priority": 5,
	}
	go func() {
		if err := uc.publisher.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to queue publish notification for post %s: %v", post.ID, err)
		}
	}()
}
