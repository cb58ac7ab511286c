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

type CreateAdInput struct {
	Name        string            `json:"name"`
	Type        entity.AdType     `json:"type"`
	Position    entity.AdPosition `json:"position"`
	AdsenseCode *string           `json:"adsense_code"`
	BannerImage *string           `json:"banner_image"`
	BannerLink  *string           `json:"banner_link"`
	IsActive    *bool             `json:"is_active"`
	Priority    int               `json:"priority"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
}

type UpdateAdInput struct {
	Name        *string            `json:"name"`
	Type        *entity.AdType     `json:"type"`
	Position    *entity.AdPosition `json:"position"`
	AdsenseCode *string            `json:"adsense_code"`
	BannerImage *string            `json:"banner_image"`
	BannerLink  *string            `json:"banner_link"`
	IsActive    *bool              `json:"is_active"`
	Priority    *int               `json:"priority"`
	StartDate   *time.Time         `json:"start_date"`
	EndDate     *time.Time         `json:"end_date"`
	ClearStart  bool               `json:"clear_start_date"`
	ClearEnd    bool               `json:"clear_end_date"`
}

type AdvertisementUseCase interface {
	List(ctx context.Context) ([]*entity.Advertisement, error)
	ForPosition(ctx context.Context, position entity.AdPosition) (*entity.Advertisement, error)
	ListByPosition(ctx context.Context, position entity.AdPosition) ([]*entity.Advertisement, error)
	Create(ctx context.Context, input CreateAdInput) (*entity.Advertisement, error)
	Update(ctx context.Context, id string, input UpdateAdInput) (*entity.Advertisement, error)
	Delete(ctx context.Context, id string) error
	TrackClick(ctx context.Context, id string)
	TrackImpression(ctx context.Context, id string)
}

type advertisementUseCase struct {
	adRepo persistent.AdvertisementRepository
	cache  cache.Cache
	logger *logger.Logger
	now    func() time.Time
}

func NewAdvertisementUseCase(adRepo persistent.AdvertisementRepository, cache cache.Cache, logger *logger.Logger) AdvertisementUseCase {
	return &advertisementUseCase{
		adRepo: adRepo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *advertisementUseCase) List(ctx context.Context) ([]*entity.Advertisement, error) {
	return cached(ctx, uc.cache, uc.logger, cache.Key(nsAds, "all"), func() ([]*entity.Advertisement, error) {
		ads, err := uc.adRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list advertisements: %w", err)
		}
		return ads, nil
	})
}

// ForPosition picks the ad to render in a slot, or nil when none runs now.
func (uc *advertisementUseCase) ForPosition(ctx context.Context, position entity.AdPosition) (*entity.Advertisement, error) {
	ads, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return entity.SelectAd(ads, position, uc.now()), nil
}

func (uc *advertisementUseCase) ListByPosition(ctx context.Context, position entity.AdPosition) ([]*entity.Advertisement, error) {
	ads, err := cached(ctx, uc.cache, uc.logger, cache.Key(nsAds, "position", string(position)), func() ([]*entity.Advertisement, error) {
		ads, err := uc.adRepo.ListActiveByPosition(ctx, position)
		if err != nil {
			return nil, fmt.Errorf("failed to list advertisements for %s: %w", position, err)
		}
		return ads, nil
	})
	if err != nil {
		return nil, err
	}
	// Date windows are checked after the cache so expiry is never stale.
	return entity.RunningAds(ads, position, uc.now()), nil
}

func (uc *advertisementUseCase) Create(ctx context.Context, input CreateAdInput) (*entity.Advertisement, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}

	adType := input.Type
	if adType == "" {
		adType = entity.AdTypeBanner
	}
	position := input.Position
	if position == "" {
		position = entity.PositionSidebar
	}
	if !adType.Valid() || !position.Valid() {
		return nil, fmt.Errorf("%w: unknown ad type or position", entity.ErrInvalidInput)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	ad := &entity.Advertisement{
		Name:        name,
		Type:        adType,
		Position:    position,
		AdsenseCode: nullable(input.AdsenseCode),
		BannerImage: nullable(input.BannerImage),
		BannerLink:  nullable(input.BannerLink),
		IsActive:    isActive,
		Priority:    input.Priority,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	if err := uc.adRepo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}

	uc.invalidate(ctx)
	return ad, nil
}

func (uc *advertisementUseCase) Update(ctx context.Context, id string, input UpdateAdInput) (*entity.Advertisement, error) {
	changes := make(map[string]interface{})

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", entity.ErrInvalidInput)
		}
		changes["name"] = name
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown ad type %q", entity.ErrInvalidInput, *input.Type)
		}
		changes["type"] = string(*input.Type)
	}
	if input.Position != nil {
		if !input.Position.Valid() {
			return nil, fmt.Errorf("%w: unknown ad position %q", entity.ErrInvalidInput, *input.Position)
		}
		changes["position"] = string(*input.Position)
	}
	if input.AdsenseCode != nil {
		changes["adsense_code"] = columnValue(input.AdsenseCode)
	}
	if input.BannerImage != nil {
		changes["banner_image"] = columnValue(input.BannerImage)
	}
	if input.BannerLink != nil {
		changes["banner_link"] = columnValue(input.BannerLink)
	}
	if input.IsActive != nil {
		changes["is_active"] = *input.IsActive
	}
	if input.Priority != nil {
		changes["priority"] = *input.Priority
	}
	switch {
	case input.ClearStart:
		changes["start_date"] = nil
	case input.StartDate != nil:
		changes["start_date"] = *input.StartDate
	}
	switch {
	case input.ClearEnd:
		changes["end_date"] = nil
	case input.EndDate != nil:
		changes["end_date"] = *input.EndDate
	}

	ad, err := uc.adRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to update advertisement: %w", err)
	}

	uc.invalidate(ctx)
	return ad, nil
}

func (uc *advertisementUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.adRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}

	uc.invalidate(ctx)
	return nil
}

// TrackClick counts a click. Failures are logged and never surfaced.
func (uc *advertisementUseCase) TrackClick(ctx context.Context, id string) {
	if err := uc.adRepo.IncrementClicks(ctx, id); err != nil {
		uc.logger.Error("Error tracking ad click for %s: %v", id, err)
	}
}

// TrackImpression counts an impression. Failures are logged and never surfaced.
func (uc *advertisementUseCase) TrackImpression(ctx context.Context, id string) {
	if err := uc.adRepo.IncrementImpressions(ctx, id); err != nil {
		uc.logger.Error("Error tracking ad impression for %s: %v", id, err)
	}
}

func (uc *advertisementUseCase) invalidate(ctx context.Context) {
	invalidate(ctx, uc.cache, uc.logger, nsAds)
}
