package persistent

import (
	"context"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
)

//go:generate mockgen -source=category_repository.go -destination=mocks/category_repository.go -package=mocks

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, translateError(err)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&categoryModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return translateError(err)
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Category, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
