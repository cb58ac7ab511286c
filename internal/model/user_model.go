package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// ProfileModel shares its primary key with the owning user.
type ProfileModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	FullName  *string `gorm:"type:varchar(255)"`
	AvatarURL *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

type UserRoleModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role"`
	Role      string `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_roles_user_role"`
	CreatedAt time.Time
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

func (r *UserRoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
