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

type CreateTagInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateTagInput struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type TagUseCase interface {
	List(ctx context.Context) ([]entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	Create(ctx context.Context, input CreateTagInput) (*entity.Tag, error)
	Update(ctx context.Context, id string, input UpdateTagInput) (*entity.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagUseCase struct {
	tagRepo persistent.TagRepository
	cache   cache.Cache
	logger  *logger.Logger
}

func NewTagUseCase(tagRepo persistent.TagRepository, cache cache.Cache, logger *logger.Logger) TagUseCase {
	return &tagUseCase{
		tagRepo: tagRepo,
		cache:   cache,
		logger:  logger,
	}
}

func (uc *tagUseCase) List(ctx context.Context) ([]entity.Tag, error) {
	return cached(ctx, uc.cache, uc.logger, cache.Key(nsTags, "all"), func() ([]entity.Tag, error) {
		tags, err := uc.tagRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		return tags, nil
	})
}

func (uc *tagUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	tag, err := uc.tagRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %s: %w", slug, err)
	}
	return tag, nil
}

func (uc *tagUseCase) Create(ctx context.Context, input CreateTagInput) (*entity.Tag, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}

	slug, err := slugFor(input.Slug, name)
	if err != nil {
		return nil, err
	}

	tag := &entity.Tag{Name: name, Slug: slug}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	uc.invalidate(ctx)
	return tag, nil
}

func (uc *tagUseCase) Update(ctx context.Context, id string, input UpdateTagInput) (*entity.Tag, error) {
	changes := make(map[string]interface{})

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrInvalidInput)
		}
		changes["name"] = name
	}
	switch {
	case input.Slug != nil && strings.TrimSpace(*input.Slug) != "":
		slug, err := slugFor(*input.Slug, "")
		if err != nil {
			return nil, err
		}
		changes["slug"] = slug
	case input.Name != nil:
		if slug := content.Slug(*input.Name); slug != "" {
			changes["slug"] = slug
		}
	}

	tag, err := uc.tagRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	uc.invalidate(ctx)
	return tag, nil
}

func (uc *tagUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.tagRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *tagUseCase) invalidate(ctx context.Context) {
	invalidate(ctx, uc.cache, uc.logger, nsTags, nsDashboard)
}
