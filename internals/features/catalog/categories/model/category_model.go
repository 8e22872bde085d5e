package model

import (
	"time"

	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID          string  `gorm:"column:category_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryName        string  `gorm:"column:category_name;type:varchar(150);not null"`
	CategorySlug        string  `gorm:"column:category_slug;type:varchar(160);not null"`
	CategoryDescription *string `gorm:"column:category_description;type:text"`
	CategoryImageURL    *string `gorm:"column:category_image_url;type:text"`

	// Optional parent for sub-categories; no cascading checks, ids only.
	CategoryParentID *string `gorm:"column:category_parent_id;type:uuid"`

	CategoryStatus string `gorm:"column:category_status;type:varchar(20);default:'active'"`

	CategoryCreatedAt time.Time      `gorm:"column:category_created_at;autoCreateTime"`
	CategoryUpdatedAt time.Time      `gorm:"column:category_updated_at;autoUpdateTime"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
