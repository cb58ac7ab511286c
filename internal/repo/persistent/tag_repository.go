package persistent

import (
	"context"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tag_repository.go -destination=mocks/tag_repository.go -package=mocks

type TagRepository interface {
	List(ctx context.Context) ([]entity.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]entity.Tag, error) {
	var tagModels []model.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*entity.Tag, error) {
	var tagModel model.TagModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tagModel).Error; err != nil {
		return nil, translateError(err)
	}
	tag := ToTagEntity(&tagModel)
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagModel := &model.TagModel{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}
	if err := r.db.WithContext(ctx).Create(tagModel).Error; err != nil {
		return translateError(err)
	}
	*tag = ToTagEntity(tagModel)
	return nil
}

func (r *tagRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Tag, error) {
	db := r.db.WithContext(ctx)
	if len(changes) > 0 {
		result := db.Model(&model.TagModel{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrNotFound
		}
	}

	var tagModel model.TagModel
	if err := db.Where("id = ?", id).First(&tagModel).Error; err != nil {
		return nil, translateError(err)
	}
	tag := ToTagEntity(&tagModel)
	return &tag, nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.TagModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
