package dto

import (
	"time"

	"storeadmin_backend/internals/features/catalog/categories/model"
)

// ============================
// Response DTO
// ============================
type CategoryDTO struct {
	CategoryID          string     `json:"category_id"`
	CategoryName        string     `json:"category_name"`
	CategorySlug        string     `json:"category_slug"`
	CategoryDescription *string    `json:"category_description"`
	CategoryImageURL    *string    `json:"category_image_url"`
	CategoryParentID    *string    `json:"category_parent_id"`
	CategoryStatus      string     `json:"category_status"`
	CategoryCreatedAt   time.Time  `json:"category_created_at"`
	CategoryUpdatedAt   time.Time  `json:"category_updated_at"`
	CategoryDeletedAt   *time.Time `json:"category_deleted_at,omitempty"`
}

// ============================
// Request DTOs
// ============================
type CreateCategoryRequest struct {
	CategoryName        string  `json:"category_name" form:"category_name" validate:"required,min=2,max=150"`
	CategorySlug        string  `json:"category_slug" form:"category_slug" validate:"omitempty,max=160"`
	CategoryDescription *string `json:"category_description" form:"category_description"`
	CategoryParentID    *string `json:"category_parent_id" form:"category_parent_id" validate:"omitempty,uuid"`
	CategoryStatus      string  `json:"category_status" form:"category_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"category_name" form:"category_name" validate:"omitempty,min=2,max=150"`
	CategorySlug        *string `json:"category_slug" form:"category_slug" validate:"omitempty,max=160"`
	CategoryDescription *string `json:"category_description" form:"category_description"`
	CategoryParentID    *string `json:"category_parent_id" form:"category_parent_id" validate:"omitempty,uuid"`
	CategoryStatus      *string `json:"category_status" form:"category_status" validate:"omitempty,oneof=active inactive"`
}

// ============================
// Converters
// ============================
func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	dto := CategoryDTO{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategorySlug:        m.CategorySlug,
		CategoryDescription: m.CategoryDescription,
		CategoryImageURL:    m.CategoryImageURL,
		CategoryParentID:    m.CategoryParentID,
		CategoryStatus:      m.CategoryStatus,
		CategoryCreatedAt:   m.CategoryCreatedAt,
		CategoryUpdatedAt:   m.CategoryUpdatedAt,
	}
	if m.CategoryDeletedAt.Valid {
		t := m.CategoryDeletedAt.Time
		dto.CategoryDeletedAt = &t
	}
	return dto
}

func ToCategoryDTOs(ms []model.CategoryModel) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCategoryDTO(m))
	}
	return out
}

func (r CreateCategoryRequest) ToModel() model.CategoryModel {
	status := r.CategoryStatus
	if status == "" {
		status = "active"
	}
	return model.CategoryModel{
		CategoryName:        r.CategoryName,
		CategorySlug:        r.CategorySlug,
		CategoryDescription: r.CategoryDescription,
		CategoryParentID:    r.CategoryParentID,
		CategoryStatus:      status,
	}
}

// ApplyTo copies the touched fields onto the model for a partial update.
func (r UpdateCategoryRequest) ApplyTo(m *model.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategorySlug != nil {
		m.CategorySlug = *r.CategorySlug
	}
	if r.CategoryDescription != nil {
		m.CategoryDescription = r.CategoryDescription
	}
	if r.CategoryParentID != nil {
		m.CategoryParentID = r.CategoryParentID
	}
	if r.CategoryStatus != nil {
		m.CategoryStatus = *r.CategoryStatus
	}
}
