package model

import (
	"time"

	"gorm.io/gorm"
)

type BrandModel struct {
	BrandID          string  `gorm:"column:brand_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	BrandName        string  `gorm:"column:brand_name;type:varchar(150);not null"`
	BrandSlug        string  `gorm:"column:brand_slug;type:varchar(160);not null"`
	BrandDescription *string `gorm:"column:brand_description;type:text"`
	BrandWebsite     *string `gorm:"column:brand_website;type:varchar(255)"`
	BrandLogoURL     *string `gorm:"column:brand_logo_url;type:text"`
	BrandStatus      string  `gorm:"column:brand_status;type:varchar(20);default:'active'"`

	BrandCreatedAt time.Time      `gorm:"column:brand_created_at;autoCreateTime"`
	BrandUpdatedAt time.Time      `gorm:"column:brand_updated_at;autoUpdateTime"`
	BrandDeletedAt gorm.DeletedAt `gorm:"column:brand_deleted_at;index"`
}

func (BrandModel) TableName() string {
	return "brands"
}
