package dto

import (
	"time"

	"storeadmin_backend/internals/features/marketing/newsletters/model"
)

type NewsletterDTO struct {
	NewsletterID            string     `json:"newsletter_id"`
	NewsletterTitle         string     `json:"newsletter_title"`
	NewsletterSlug          string     `json:"newsletter_slug"`
	NewsletterDescription   string     `json:"newsletter_description"`
	NewsletterCoverImageURL *string    `json:"newsletter_cover_image_url"`
	NewsletterIsPublished   bool       `json:"newsletter_is_published"`
	NewsletterStatus        string     `json:"newsletter_status"`
	NewsletterCreatedAt     time.Time  `json:"newsletter_created_at"`
	NewsletterUpdatedAt     time.Time  `json:"newsletter_updated_at"`
	NewsletterDeletedAt     *time.Time `json:"newsletter_deleted_at,omitempty"`
}

type CreateNewsletterRequest struct {
	NewsletterTitle       string `json:"newsletter_title" form:"newsletter_title" validate:"required,min=2,max=200"`
	NewsletterSlug        string `json:"newsletter_slug" form:"newsletter_slug" validate:"omitempty,max=160"`
	NewsletterDescription string `json:"newsletter_description" form:"newsletter_description" validate:"required"`
	NewsletterIsPublished *bool  `json:"newsletter_is_published" form:"newsletter_is_published"`
	NewsletterStatus      string `json:"newsletter_status" form:"newsletter_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateNewsletterRequest struct {
	NewsletterTitle       *string `json:"newsletter_title" form:"newsletter_title" validate:"omitempty,min=2,max=200"`
	NewsletterSlug        *string `json:"newsletter_slug" form:"newsletter_slug" validate:"omitempty,max=160"`
	NewsletterDescription *string `json:"newsletter_description" form:"newsletter_description" validate:"omitempty,min=1"`
	NewsletterIsPublished *bool   `json:"newsletter_is_published" form:"newsletter_is_published"`
	NewsletterStatus      *string `json:"newsletter_status" form:"newsletter_status" validate:"omitempty,oneof=active inactive"`
}

func ToNewsletterDTO(m model.NewsletterModel) NewsletterDTO {
	dto := NewsletterDTO{
		NewsletterID:            m.NewsletterID,
		NewsletterTitle:         m.NewsletterTitle,
		NewsletterSlug:          m.NewsletterSlug,
		NewsletterDescription:   m.NewsletterDescription,
		NewsletterCoverImageURL: m.NewsletterCoverImageURL,
		NewsletterIsPublished:   m.NewsletterIsPublished,
		NewsletterStatus:        m.NewsletterStatus,
		NewsletterCreatedAt:     m.NewsletterCreatedAt,
		NewsletterUpdatedAt:     m.NewsletterUpdatedAt,
	}
	if m.NewsletterDeletedAt.Valid {
		t := m.NewsletterDeletedAt.Time
		dto.NewsletterDeletedAt = &t
	}
	return dto
}

func ToNewsletterDTOs(ms []model.NewsletterModel) []NewsletterDTO {
	out := make([]NewsletterDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNewsletterDTO(m))
	}
	return out
}

func (r CreateNewsletterRequest) ToModel() model.NewsletterModel {
	status := r.NewsletterStatus
	if status == "" {
		status = "active"
	}
	m := model.NewsletterModel{
		NewsletterTitle:       r.NewsletterTitle,
		NewsletterSlug:        r.NewsletterSlug,
		NewsletterDescription: r.NewsletterDescription,
		NewsletterStatus:      status,
	}
	if r.NewsletterIsPublished != nil {
		m.NewsletterIsPublished = *r.NewsletterIsPublished
	}
	return m
}

func (r UpdateNewsletterRequest) ApplyTo(m *model.NewsletterModel) {
	if r.NewsletterTitle != nil {
		m.NewsletterTitle = *r.NewsletterTitle
	}
	if r.NewsletterSlug != nil {
		m.NewsletterSlug = *r.NewsletterSlug
	}
	if r.NewsletterDescription != nil {
		m.NewsletterDescription = *r.NewsletterDescription
	}
	if r.NewsletterIsPublished != nil {
		m.NewsletterIsPublished = *r.NewsletterIsPublished
	}
	if r.NewsletterStatus != nil {
		m.NewsletterStatus = *r.NewsletterStatus
	}
}
