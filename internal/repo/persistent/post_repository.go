package persistent

import (
	"context"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=post_repository.go -destination=mocks/post_repository.go -package=mocks

// Orderings accepted by PostQuery.OrderBy.
const (
	OrderByCreated   = "created_at DESC"
	OrderByPublished = "published_at DESC NULLS LAST"
	OrderByViews     = "views_count DESC"
)

// PostQuery filters List. Zero values mean "no constraint".
type PostQuery struct {
	Status     entity.PostStatus
	CategoryID string
	Search     string
	ExcludeID  string
	OrderBy    string
	Limit      int
}

type PostRepository interface {
	List(ctx context.Context, q PostQuery) ([]*entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string, status entity.PostStatus) (*entity.Post, error)
	Create(ctx context.Context, post *entity.Post, tagIDs []string) error
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	ReplaceTags(ctx context.Context, postID string, tagIDs []string) error
	GetTags(ctx context.Context, postID string) ([]entity.Tag, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]*entity.Post, error) {
	query := r.db.WithContext(ctx).Preload("Category")

	if q.Status != "" {
		query = query.Where("status = ?", string(q.Status))
	}
	if q.CategoryID != "" {
		query = query.Where("category_id = ?", q.CategoryID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("(title ILIKE ? OR excerpt ILIKE ?)", pattern, pattern)
	}
	if q.ExcludeID != "" {
		query = query.Where("id <> ?", q.ExcludeID)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = OrderByCreated
	}
	query = query.Order(orderBy)

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var postModels []model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, translateError(err)
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string, status entity.PostStatus) (*entity.Post, error) {
	query := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var postModel model.PostModel
	if err := query.First(&postModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post, tagIDs []string) error {
	postModel := ToPostModel(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(postModel).Error; err != nil {
			return err
		}
		return insertPostTags(tx, postModel.ID, tagIDs)
	})
	if err != nil {
		return translateError(err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Post, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *postRepository) IncrementViews(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("views_count", clause.Expr{SQL: "views_count + ?", Vars: []interface{}{1}}).Error
	return translateError(err)
}

// ReplaceTags swaps the post's tag set wholesale.
func (r *postRepository) ReplaceTags(ctx context.Context, postID string, tagIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostTagModel{}).Error; err != nil {
			return err
		}
		return insertPostTags(tx, postID, tagIDs)
	})
	return translateError(err)
}

func (r *postRepository) GetTags(ctx context.Context, postID string) ([]entity.Tag, error) {
	var tagModels []model.TagModel
	err := r.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name ASC").
		Find(&tagModels).Error
	if err != nil {
		return nil, translateError(err)
	}

	tags := make([]entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

func insertPostTags(tx *gorm.DB, postID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.PostTagModel, 0, len(tagIDs))
	seen := make(map[string]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		rows = append(rows, model.PostTagModel{PostID: postID, TagID: tagID})
	}
	return tx.Create(&rows).Error
}
