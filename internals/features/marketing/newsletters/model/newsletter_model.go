package model

import (
	"time"

	"gorm.io/gorm"
)

type NewsletterModel struct {
	NewsletterID            string  `gorm:"column:newsletter_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	NewsletterTitle         string  `gorm:"column:newsletter_title;type:varchar(200);not null"`
	NewsletterSlug          string  `gorm:"column:newsletter_slug;type:varchar(160);not null;uniqueIndex:uq_newsletters_slug,where:newsletter_deleted_at IS NULL"`
	NewsletterDescription   string  `gorm:"column:newsletter_description;type:text;not null"`
	NewsletterCoverImageURL *string `gorm:"column:newsletter_cover_image_url;type:text"`
	NewsletterIsPublished   bool    `gorm:"column:newsletter_is_published;default:false"`
	NewsletterStatus        string  `gorm:"column:newsletter_status;type:varchar(20);default:'active'"`

	NewsletterCreatedAt time.Time      `gorm:"column:newsletter_created_at;autoCreateTime"`
	NewsletterUpdatedAt time.Time      `gorm:"column:newsletter_updated_at;autoUpdateTime"`
	NewsletterDeletedAt gorm.DeletedAt `gorm:"column:newsletter_deleted_at;index"`
}

func (NewsletterModel) TableName() string {
	return "newsletters"
}
