package dto

import (
	"time"

	"storeadmin_backend/internals/features/content/pages/model"
)

type PageDTO struct {
	PageID              string     `json:"page_id"`
	PageTitle           string     `json:"page_title"`
	PageSlug            string     `json:"page_slug"`
	PageContent         string     `json:"page_content"`
	PageMetaTitle       *string    `json:"page_meta_title"`
	PageMetaDescription *string    `json:"page_meta_description"`
	PageStatus          string     `json:"page_status"`
	PageCreatedAt       time.Time  `json:"page_created_at"`
	PageUpdatedAt       time.Time  `json:"page_updated_at"`
	PageDeletedAt       *time.Time `json:"page_deleted_at,omitempty"`
}

type CreatePageRequest struct {
	PageTitle           string  `json:"page_title" validate:"required,min=2,max=200"`
	PageSlug            string  `json:"page_slug" validate:"omitempty,max=160"`
	PageContent         string  `json:"page_content" validate:"required"`
	PageMetaTitle       *string `json:"page_meta_title" validate:"omitempty,max=200"`
	PageMetaDescription *string `json:"page_meta_description"`
	PageStatus          string  `json:"page_status" validate:"omitempty,oneof=active inactive"`
}

type UpdatePageRequest struct {
	PageTitle           *string `json:"page_title" validate:"omitempty,min=2,max=200"`
	PageSlug            *string `json:"page_slug" validate:"omitempty,max=160"`
	PageContent         *string `json:"page_content" validate:"omitempty,min=1"`
	PageMetaTitle       *string `json:"page_meta_title" validate:"omitempty,max=200"`
	PageMetaDescription *string `json:"page_meta_description"`
	PageStatus          *string `json:"page_status" validate:"omitempty,oneof=active inactive"`
}

func ToPageDTO(m model.PageModel) PageDTO {
	dto := PageDTO{
		PageID:              m.PageID,
		PageTitle:           m.PageTitle,
		PageSlug:            m.PageSlug,
		PageContent:         m.PageContent,
		PageMetaTitle:       m.PageMetaTitle,
		PageMetaDescription: m.PageMetaDescription,
		PageStatus:          m.PageStatus,
		PageCreatedAt:       m.PageCreatedAt,
		PageUpdatedAt:       m.PageUpdatedAt,
	}
	if m.PageDeletedAt.Valid {
		t := m.PageDeletedAt.Time
		dto.PageDeletedAt = &t
	}
	return dto
}

func ToPageDTOs(ms []model.PageModel) []PageDTO {
	out := make([]PageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPageDTO(m))
	}
	return out
}

func (r CreatePageRequest) ToModel() model.PageModel {
	status := r.PageStatus
	if status == "" {
		status = "active"
	}
	return model.PageModel{
		PageTitle:           r.PageTitle,
		PageSlug:            r.PageSlug,
		PageContent:         r.PageContent,
		PageMetaTitle:       r.PageMetaTitle,
		PageMetaDescription: r.PageMetaDescription,
		PageStatus:          status,
	}
}

func (r UpdatePageRequest) ApplyTo(m *model.PageModel) {
	if r.PageTitle != nil {
		m.PageTitle = *r.PageTitle
	}
	if r.PageSlug != nil {
		m.PageSlug = *r.PageSlug
	}
	if r.PageContent != nil {
		m.PageContent = *r.PageContent
	}
	if r.PageMetaTitle != nil {
		m.PageMetaTitle = r.PageMetaTitle
	}
	if r.PageMetaDescription != nil {
		m.PageMetaDescription = r.PageMetaDescription
	}
	if r.PageStatus != nil {
		m.PageStatus = *r.PageStatus
	}
}
