package persistent

import (
	"context"
	"strings"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mocks

type UserRepository interface {
	// Create stores the credentials together with the profile row and the
	// initial role in one transaction.
	Create(ctx context.Context, user *entity.User, fullName *string, role entity.Role) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Profile, error)
}

type RoleRepository interface {
	GetRoles(ctx context.Context, userID string) ([]entity.Role, error)
	AddRole(ctx context.Context, userID string, role entity.Role) error
	RemoveRole(ctx context.Context, userID string, role entity.Role) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User, fullName *string, role entity.Role) error {
	userModel := &model.UserModel{
		ID:           user.ID,
		Email:        strings.ToLower(user.Email),
		PasswordHash: user.PasswordHash,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.ProfileModel{ID: userModel.ID, FullName: fullName}).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserRoleModel{UserID: userModel.ID, Role: string(role)}).Error
	})
	if err != nil {
		return translateError(err)
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profileModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []model.ProfileModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, translateError(err)
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*entity.Profile, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, entity.ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetRoles(ctx context.Context, userID string) ([]entity.Role, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.UserRoleModel{}).
		Where("user_id = ?", userID).
		Order("role ASC").
		Pluck("role", &names).Error
	if err != nil {
		return nil, translateError(err)
	}

	roles := make([]entity.Role, len(names))
	for i, name := range names {
		roles[i] = entity.Role(name)
	}
	return roles, nil
}

func (r *roleRepository) AddRole(ctx context.Context, userID string, role entity.Role) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRoleModel{UserID: userID, Role: string(role)}).Error
	return translateError(err)
}

func (r *roleRepository) RemoveRole(ctx context.Context, userID string, role entity.Role) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, string(role)).
		Delete(&model.UserRoleModel{}).Error
	return translateError(err)
}
