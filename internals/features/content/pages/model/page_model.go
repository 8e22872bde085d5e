package model

import (
	"time"

	"gorm.io/gorm"
)

type PageModel struct {
	PageID              string  `gorm:"column:page_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	PageTitle           string  `gorm:"column:page_title;type:varchar(200);not null"`
	PageSlug            string  `gorm:"column:page_slug;type:varchar(160);not null;uniqueIndex:uq_pages_slug,where:page_deleted_at IS NULL"`
	PageContent         string  `gorm:"column:page_content;type:text;not null"`
	PageMetaTitle       *string `gorm:"column:page_meta_title;type:varchar(200)"`
	PageMetaDescription *string `gorm:"column:page_meta_description;type:text"`
	PageStatus          string  `gorm:"column:page_status;type:varchar(20);default:'active'"`

	PageCreatedAt time.Time      `gorm:"column:page_created_at;autoCreateTime"`
	PageUpdatedAt time.Time      `gorm:"column:page_updated_at;autoUpdateTime"`
	PageDeletedAt gorm.DeletedAt `gorm:"column:page_deleted_at;index"`
}

func (PageModel) TableName() string {
	return "pages"
}
