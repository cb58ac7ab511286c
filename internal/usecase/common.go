package usecase

import (
	"context"
	"fmt"
	"strings"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/cache"
	"imersao-completa/pkg/content"
	"imersao-completa/pkg/logger"
)

// Cache namespaces. A write to a resource drops every list cached under
// the namespaces it can affect.
const (
	nsPosts       = "posts"
	nsPublicPosts = "public-posts"
	nsCategories  = "categories"
	nsTags        = "tags"
	nsAds         = "advertisements"
	nsSubscribers = "newsletter-subscribers"
	nsDashboard   = "dashboard-stats"
)

// TaskPublisher hands notification tasks to the queue.
type TaskPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

// cached serves key from c, falling back to load and storing its result.
// Cache failures are logged and never fail the read.
func cached[T any](ctx context.Context, c cache.Cache, log *logger.Logger, key string, load func() (T, error)) (T, error) {
	var out T
	hit, err := c.Get(ctx, key, &out)
	if err != nil {
		log.Warn("cache read %s: %v", key, err)
	}
	if hit {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return out, err
	}

	if err := c.Set(ctx, key, out); err != nil {
		log.Warn("cache write %s: %v", key, err)
	}
	return out, nil
}

func invalidate(ctx context.Context, c cache.Cache, log *logger.Logger, namespaces ...string) {
	if err := c.Invalidate(ctx, namespaces...); err != nil {
		log.Warn("cache invalidate %v: %v", namespaces, err)
	}
}

// attachAuthors resolves author profiles for posts with one batched lookup.
// A failed lookup leaves authors nil.
func attachAuthors(ctx context.Context, profiles persistent.ProfileRepository, log *logger.Logger, posts []*entity.Post) {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range posts {
		if p.AuthorID != nil && *p.AuthorID != "" && !seen[*p.AuthorID] {
			seen[*p.AuthorID] = true
			ids = append(ids, *p.AuthorID)
		}
	}
	if len(ids) == 0 {
		return
	}

	authors, err := profiles.GetByIDs(ctx, ids)
	if err != nil {
		log.Warn("failed to load post authors: %v", err)
		return
	}

	byID := make(map[string]*entity.Profile, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}
	for _, p := range posts {
		if p.AuthorID != nil {
			p.Author = byID[*p.AuthorID]
		}
	}
}

// attachTags loads the post's tags; failures leave an empty set.
func attachTags(ctx context.Context, posts persistent.PostRepository, log *logger.Logger, post *entity.Post) {
	tags, err := posts.GetTags(ctx, post.ID)
	if err != nil {
		log.Warn("failed to load tags for post %s: %v", post.ID, err)
		tags = nil
	}
	if tags == nil {
		tags = []entity.Tag{}
	}
	post.Tags = tags
}

// nullable turns blank strings into NULL.
func nullable(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// columnValue renders an optional text field for an update map.
func columnValue(s *string) interface{} {
	if v := nullable(s); v != nil {
		return *v
	}
	return nil
}

// slugFor runs an explicit slug through content.Slug, or derives one from
// fallback when none was sent. Nothing URL-safe left is invalid input.
func slugFor(explicit, fallback string) (string, error) {
	source := fallback
	if strings.TrimSpace(explicit) != "" {
		source = explicit
	}
	slug := content.Slug(source)
	if slug == "" {
		return "", fmt.Errorf("%w: %q does not yield a URL-safe slug", entity.ErrInvalidInput, source)
	}
	return slug, nil
}
