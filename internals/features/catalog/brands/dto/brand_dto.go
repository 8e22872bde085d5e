package dto

import (
	"time"

	"storeadmin_backend/internals/features/catalog/brands/model"
)

type BrandDTO struct {
	BrandID          string     `json:"brand_id"`
	BrandName        string     `json:"brand_name"`
	BrandSlug        string     `json:"brand_slug"`
	BrandDescription *string    `json:"brand_description"`
	BrandWebsite     *string    `json:"brand_website"`
	BrandLogoURL     *string    `json:"brand_logo_url"`
	BrandStatus      string     `json:"brand_status"`
	BrandCreatedAt   time.Time  `json:"brand_created_at"`
	BrandUpdatedAt   time.Time  `json:"brand_updated_at"`
	BrandDeletedAt   *time.Time `json:"brand_deleted_at,omitempty"`
}

type CreateBrandRequest struct {
	BrandName        string  `json:"brand_name" form:"brand_name" validate:"required,min=2,max=150"`
	BrandSlug        string  `json:"brand_slug" form:"brand_slug" validate:"omitempty,max=160"`
	BrandDescription *string `json:"brand_description" form:"brand_description"`
	BrandWebsite     *string `json:"brand_website" form:"brand_website" validate:"omitempty,url"`
	BrandStatus      string  `json:"brand_status" form:"brand_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateBrandRequest struct {
	BrandName        *string `json:"brand_name" form:"brand_name" validate:"omitempty,min=2,max=150"`
	BrandSlug        *string `json:"brand_slug" form:"brand_slug" validate:"omitempty,max=160"`
	BrandDescription *string `json:"brand_description" form:"brand_description"`
	BrandWebsite     *string `json:"brand_website" form:"brand_website" validate:"omitempty,url"`
	BrandStatus      *string `json:"brand_status" form:"brand_status" validate:"omitempty,oneof=active inactive"`
}

func ToBrandDTO(m model.BrandModel) BrandDTO {
	dto := BrandDTO{
		BrandID:          m.BrandID,
		BrandName:        m.BrandName,
		BrandSlug:        m.BrandSlug,
		BrandDescription: m.BrandDescription,
		BrandWebsite:     m.BrandWebsite,
		BrandLogoURL:     m.BrandLogoURL,
		BrandStatus:      m.BrandStatus,
		BrandCreatedAt:   m.BrandCreatedAt,
		BrandUpdatedAt:   m.BrandUpdatedAt,
	}
	if m.BrandDeletedAt.Valid {
		t := m.BrandDeletedAt.Time
		dto.BrandDeletedAt = &t
	}
	return dto
}

func ToBrandDTOs(ms []model.BrandModel) []BrandDTO {
	out := make([]BrandDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBrandDTO(m))
	}
	return out
}

func (r CreateBrandRequest) ToModel() model.BrandModel {
	status := r.BrandStatus
	if status == "" {
		status = "active"
	}
	return model.BrandModel{
		BrandName:        r.BrandName,
		BrandSlug:        r.BrandSlug,
		BrandDescription: r.BrandDescription,
		BrandWebsite:     r.BrandWebsite,
		BrandStatus:      status,
	}
}

func (r UpdateBrandRequest) ApplyTo(m *model.BrandModel) {
	if r.BrandName != nil {
		m.BrandName = *r.BrandName
	}
	if r.BrandSlug != nil {
		m.BrandSlug = *r.BrandSlug
	}
	if r.BrandDescription != nil {
		m.BrandDescription = r.BrandDescription
	}
	if r.BrandWebsite != nil {
		m.BrandWebsite = r.BrandWebsite
	}
	if r.BrandStatus != nil {
		m.BrandStatus = *r.BrandStatus
	}
}
