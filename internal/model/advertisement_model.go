package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdvertisementModel struct {
	ID               string  `gorm:"type:uuid;primary_key"`
	Name             string  `gorm:"type:varchar(255);not null"`
	Type             string  `gorm:"type:varchar(20);not null;default:'banner'"`
	Position         string  `gorm:"type:varchar(30);not null;default:'sidebar';index"`
	AdsenseCode      *string `gorm:"type:text"`
	BannerImage      *string `gorm:"type:text"`
	BannerLink       *string `gorm:"type:text"`
	IsActive         bool    `gorm:"not null;default:true"`
	Priority         int     `gorm:"not null;default:0"`
	ClicksCount      int     `gorm:"not null;default:0"`
	ImpressionsCount int     `gorm:"not null;default:0"`
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AdvertisementModel) TableName() string {
	return "advertisements"
}

func (a *AdvertisementModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
