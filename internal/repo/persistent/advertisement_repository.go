package persistent

import (
	"context"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=advertisement_repository.go -destination=mocks/advertisement_repository.go -package=mocks

type AdvertisementRepository interface {
	List(ctx context.Context) ([]*entity.Advertisement, error)
	ListActiveByPosition(ctx context.Context, position entity.AdPosition) ([]*entity.Advertisement, error)
	GetByID(ctx context.Context, id string) (*entity.Advertisement, error)
	Create(ctx context.Context, ad *entity.Advertisement) error
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Advertisement, error)
	Delete(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
	IncrementImpressions(ctx context.Context, id string) error
}

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) List(ctx context.Context) ([]*entity.Advertisement, error) {
	return r.find(r.db.WithContext(ctx).Order("priority DESC"))
}

func (r *advertisementRepository) ListActiveByPosition(ctx context.Context, position entity.AdPosition) ([]*entity.Advertisement, error) {
	return r.find(r.db.WithContext(ctx).
		Where("position = ? AND is_active = ?", string(position), true).
		Order("priority DESC"))
}

func (r *advertisementRepository) find(query *gorm.DB) ([]*entity.Advertisement, error) {
	var adModels []model.AdvertisementModel
	if err := query.Find(&adModels).Error; err != nil {
		return nil, translateError(err)
	}

	ads := make([]*entity.Advertisement, len(adModels))
	for i := range adModels {
		ads[i] = ToAdvertisementEntity(&adModels[i])
	}
	return ads, nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	var adModel model.AdvertisementModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&adModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToAdvertisementEntity(&adModel), nil
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	adModel := ToAdvertisementModel(ad)
	// Select every column so an explicit is_active=false is not swapped for the default.
	if err := r.db.WithContext(ctx).Select("*").Create(adModel).Error; err != nil {
		return translateError(err)
	}
	*ad = *ToAdvertisementEntity(adModel)
	return nil
}

func (r *advertisementRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Advertisement, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&model.AdvertisementModel{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.AdvertisementModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *advertisementRepository) IncrementClicks(ctx context.Context, id string) error {
	return r.increment(ctx, id, "clicks_count")
}

func (r *advertisementRepository) IncrementImpressions(ctx context.Context, id string) error {
	return r.increment(ctx, id, "impressions_count")
}

func (r *advertisementRepository) increment(ctx context.Context, id, column string) error {
	result := r.db.WithContext(ctx).Model(&model.AdvertisementModel{}).Where("id = ?", id).
		UpdateColumn(column, clause.Expr{SQL: column + " + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
