package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProductModel struct {
	ProductID          string  `gorm:"column:product_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductName        string  `gorm:"column:product_name;type:varchar(200);not null"`
	ProductSlug        string  `gorm:"column:product_slug;type:varchar(160);not null"`
	ProductDescription *string `gorm:"column:product_description;type:text"`
	ProductSKU         *string `gorm:"column:product_sku;type:varchar(64)"`

	ProductPrice float64 `gorm:"column:product_price;type:numeric(12,2);not null"`
	ProductStock int     `gorm:"column:product_stock;default:0"`

	// References by id only; no cascading checks.
	ProductCategoryID *string `gorm:"column:product_category_id;type:uuid"`
	ProductBrandID    *string `gorm:"column:product_brand_id;type:uuid"`

	ProductImageURL *string        `gorm:"column:product_image_url;type:text"`
	ProductGallery  pq.StringArray `gorm:"column:product_gallery;type:text[]"`

	ProductStatus string `gorm:"column:product_status;type:varchar(20);default:'active'"`

	ProductCreatedAt time.Time      `gorm:"column:product_created_at;autoCreateTime"`
	ProductUpdatedAt time.Time      `gorm:"column:product_updated_at;autoUpdateTime"`
	ProductDeletedAt gorm.DeletedAt `gorm:"column:product_deleted_at;index"`
}

func (ProductModel) TableName() string {
	return "products"
}
