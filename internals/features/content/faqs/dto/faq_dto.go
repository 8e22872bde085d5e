package dto

import (
	"time"

	"storeadmin_backend/internals/features/content/faqs/model"
)

type FaqDTO struct {
	FaqID        string     `json:"faq_id"`
	FaqQuestion  string     `json:"faq_question"`
	FaqAnswer    string     `json:"faq_answer"`
	FaqStatus    string     `json:"faq_status"`
	FaqCreatedAt time.Time  `json:"faq_created_at"`
	FaqUpdatedAt time.Time  `json:"faq_updated_at"`
	FaqDeletedAt *time.Time `json:"faq_deleted_at,omitempty"`
}

type CreateFaqRequest struct {
	FaqQuestion string `json:"faq_question" validate:"required,min=5"`
	FaqAnswer   string `json:"faq_answer" validate:"required"`
	FaqStatus   string `json:"faq_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateFaqRequest struct {
	FaqQuestion *string `json:"faq_question" validate:"omitempty,min=5"`
	FaqAnswer   *string `json:"faq_answer" validate:"omitempty,min=1"`
	FaqStatus   *string `json:"faq_status" validate:"omitempty,oneof=active inactive"`
}

func ToFaqDTO(m model.FaqModel) FaqDTO {
	dto := FaqDTO{
		FaqID:        m.FaqID,
		FaqQuestion:  m.FaqQuestion,
		FaqAnswer:    m.FaqAnswer,
		FaqStatus:    m.FaqStatus,
		FaqCreatedAt: m.FaqCreatedAt,
		FaqUpdatedAt: m.FaqUpdatedAt,
	}
	if m.FaqDeletedAt.Valid {
		t := m.FaqDeletedAt.Time
		dto.FaqDeletedAt = &t
	}
	return dto
}

func ToFaqDTOs(ms []model.FaqModel) []FaqDTO {
	out := make([]FaqDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFaqDTO(m))
	}
	return out
}

func (r CreateFaqRequest) ToModel() model.FaqModel {
	status := r.FaqStatus
	if status == "" {
		status = "active"
	}
	return model.FaqModel{
		FaqQuestion: r.FaqQuestion,
		FaqAnswer:   r.FaqAnswer,
		FaqStatus:   status,
	}
}

func (r UpdateFaqRequest) ApplyTo(m *model.FaqModel) {
	if r.FaqQuestion != nil {
		m.FaqQuestion = *r.FaqQuestion
	}
	if r.FaqAnswer != nil {
		m.FaqAnswer = *r.FaqAnswer
	}
	if r.FaqStatus != nil {
		m.FaqStatus = *r.FaqStatus
	}
}
