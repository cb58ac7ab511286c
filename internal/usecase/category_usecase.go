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

type CreateCategoryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

type CategoryUseCase interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, input UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	cache        cache.Cache
	logger       *logger.Logger
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository, cache cache.Cache, logger *logger.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *categoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	return cached(ctx, uc.cache, uc.logger, cache.Key(nsCategories, "all"), func() ([]*entity.Category, error) {
		categories, err := uc.categoryRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return categories, nil
	})
}

func (uc *categoryUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", slug, err)
	}
	return category, nil
}

func (uc *categoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}

	slug, err := slugFor(input.Slug, name)
	if err != nil {
		return nil, err
	}

	color := stringOr(input.Color, entity.DefaultCategoryColor)
	icon := stringOr(input.Icon, entity.DefaultCategoryIcon)

	category := &entity.Category{
		Name:        name,
		Slug:        slug,
		Description: nullable(input.Description),
		Color:       &color,
		Icon:        &icon,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.invalidate(ctx)
	return category, nil
}

func (uc *categoryUseCase) Update(ctx context.Context, id string, input UpdateCategoryInput) (*entity.Category, error) {
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
	if input.Description != nil {
		changes["description"] = columnValue(input.Description)
	}
	if input.Color != nil {
		changes["color"] = columnValue(input.Color)
	}
	if input.Icon != nil {
		changes["icon"] = columnValue(input.Icon)
	}

	category, err := uc.categoryRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	uc.invalidate(ctx)
	return category, nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	uc.invalidate(ctx)
	return nil
}

// Posts embed their category, so post lists go stale with it.
func (uc *categoryUseCase) invalidate(ctx context.Context) {
	invalidate(ctx, uc.cache, uc.logger, nsCategories, nsPosts, nsPublicPosts, nsDashboard)
}
