package model

import (
	"time"

	"gorm.io/gorm"
)

type FaqModel struct {
	FaqID       string `gorm:"column:faq_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	FaqQuestion string `gorm:"column:faq_question;type:text;not null"`
	FaqAnswer   string `gorm:"column:faq_answer;type:text;not null"`
	FaqStatus   string `gorm:"column:faq_status;type:varchar(20);default:'active'"`

	FaqCreatedAt time.Time      `gorm:"column:faq_created_at;autoCreateTime"`
	FaqUpdatedAt time.Time      `gorm:"column:faq_updated_at;autoUpdateTime"`
	FaqDeletedAt gorm.DeletedAt `gorm:"column:faq_deleted_at;index"`
}

func (FaqModel) TableName() string {
	return "faqs"
}
