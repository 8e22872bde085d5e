package dto

import (
	"time"

	"storeadmin_backend/internals/features/catalog/products/model"
)

type ProductDTO struct {
	ProductID          string     `json:"product_id"`
	ProductName        string     `json:"product_name"`
	ProductSlug        string     `json:"product_slug"`
	ProductDescription *string    `json:"product_description"`
	ProductSKU         *string    `json:"product_sku"`
	ProductPrice       float64    `json:"product_price"`
	ProductStock       int        `json:"product_stock"`
	ProductCategoryID  *string    `json:"product_category_id"`
	ProductBrandID     *string    `json:"product_brand_id"`
	ProductImageURL    *string    `json:"product_image_url"`
	ProductGallery     []string   `json:"product_gallery"`
	ProductStatus      string     `json:"product_status"`
	ProductCreatedAt   time.Time  `json:"product_created_at"`
	ProductUpdatedAt   time.Time  `json:"product_updated_at"`
	ProductDeletedAt   *time.Time `json:"product_deleted_at,omitempty"`
}

type CreateProductRequest struct {
	ProductName        string  `json:"product_name" form:"product_name" validate:"required,min=2,max=200"`
	ProductSlug        string  `json:"product_slug" form:"product_slug" validate:"omitempty,max=160"`
	ProductDescription *string `json:"product_description" form:"product_description"`
	ProductSKU         *string `json:"product_sku" form:"product_sku" validate:"omitempty,max=64"`
	ProductPrice       float64 `json:"product_price" form:"product_price" validate:"required,gt=0"`
	ProductStock       int     `json:"product_stock" form:"product_stock" validate:"gte=0"`
	ProductCategoryID  *string `json:"product_category_id" form:"product_category_id" validate:"omitempty,uuid"`
	ProductBrandID     *string `json:"product_brand_id" form:"product_brand_id" validate:"omitempty,uuid"`
	ProductStatus      string  `json:"product_status" form:"product_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateProductRequest struct {
	ProductName        *string  `json:"product_name" form:"product_name" validate:"omitempty,min=2,max=200"`
	ProductSlug        *string  `json:"product_slug" form:"product_slug" validate:"omitempty,max=160"`
	ProductDescription *string  `json:"product_description" form:"product_description"`
	ProductSKU         *string  `json:"product_sku" form:"product_sku" validate:"omitempty,max=64"`
	ProductPrice       *float64 `json:"product_price" form:"product_price" validate:"omitempty,gt=0"`
	ProductStock       *int     `json:"product_stock" form:"product_stock" validate:"omitempty,gte=0"`
	ProductCategoryID  *string  `json:"product_category_id" form:"product_category_id" validate:"omitempty,uuid"`
	ProductBrandID     *string  `json:"product_brand_id" form:"product_brand_id" validate:"omitempty,uuid"`
	ProductStatus      *string  `json:"product_status" form:"product_status" validate:"omitempty,oneof=active inactive"`
}

func ToProductDTO(m model.ProductModel) ProductDTO {
	dto := ProductDTO{
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		ProductSlug:        m.ProductSlug,
		ProductDescription: m.ProductDescription,
		ProductSKU:         m.ProductSKU,
		ProductPrice:       m.ProductPrice,
		ProductStock:       m.ProductStock,
		ProductCategoryID:  m.ProductCategoryID,
		ProductBrandID:     m.ProductBrandID,
		ProductImageURL:    m.ProductImageURL,
		ProductGallery:     []string(m.ProductGallery),
		ProductStatus:      m.ProductStatus,
		ProductCreatedAt:   m.ProductCreatedAt,
		ProductUpdatedAt:   m.ProductUpdatedAt,
	}
	if dto.ProductGallery == nil {
		dto.ProductGallery = []string{}
	}
	if m.ProductDeletedAt.Valid {
		t := m.ProductDeletedAt.Time
		dto.ProductDeletedAt = &t
	}
	return dto
}

func ToProductDTOs(ms []model.ProductModel) []ProductDTO {
	out := make([]ProductDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToProductDTO(m))
	}
	return out
}

func (r CreateProductRequest) ToModel() model.ProductModel {
	status := r.ProductStatus
	if status == "" {
		status = "active"
	}
	return model.ProductModel{
		ProductName:        r.ProductName,
		ProductSlug:        r.ProductSlug,
		ProductDescription: r.ProductDescription,
		ProductSKU:         r.ProductSKU,
		ProductPrice:       r.ProductPrice,
		ProductStock:       r.ProductStock,
		ProductCategoryID:  r.ProductCategoryID,
		ProductBrandID:     r.ProductBrandID,
		ProductStatus:      status,
	}
}

func (r UpdateProductRequest) ApplyTo(m *model.ProductModel) {
	if r.ProductName != nil {
		m.ProductName = *r.ProductName
	}
	if r.ProductSlug != nil {
		m.ProductSlug = *r.ProductSlug
	}
	if r.ProductDescription != nil {
		m.ProductDescription = r.ProductDescription
	}
	if r.ProductSKU != nil {
		m.ProductSKU = r.ProductSKU
	}
	if r.ProductPrice != nil {
		m.ProductPrice = *r.ProductPrice
	}
	if r.ProductStock != nil {
		m.ProductStock = *r.ProductStock
	}
	if r.ProductCategoryID != nil {
		m.ProductCategoryID = r.ProductCategoryID
	}
	if r.ProductBrandID != nil {
		m.ProductBrandID = r.ProductBrandID
	}
	if r.ProductStatus != nil {
		m.ProductStatus = *r.ProductStatus
	}
}
