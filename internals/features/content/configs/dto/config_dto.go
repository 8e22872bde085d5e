package dto

import (
	"encoding/json"
	"time"

	"storeadmin_backend/internals/features/content/configs/model"
)

type ConfigOption struct {
	Key   string `json:"key" validate:"required,min=1"`
	Value string `json:"value" validate:"required,min=1"`
}

type ConfigDTO struct {
	ConfigID        string         `json:"config_id"`
	ConfigName      string         `json:"config_name"`
	ConfigSlug      string         `json:"config_slug"`
	ConfigOptions   []ConfigOption `json:"config_options"`
	ConfigStatus    string         `json:"config_status"`
	ConfigCreatedAt time.Time      `json:"config_created_at"`
	ConfigUpdatedAt time.Time      `json:"config_updated_at"`
	ConfigDeletedAt *time.Time     `json:"config_deleted_at,omitempty"`
}

type CreateConfigRequest struct {
	ConfigName    string         `json:"config_name" validate:"required,min=2,max=150"`
	ConfigOptions []ConfigOption `json:"config_options" validate:"omitempty,dive"`
	ConfigStatus  string         `json:"config_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateConfigRequest struct {
	ConfigName    *string        `json:"config_name" validate:"omitempty,min=2,max=150"`
	ConfigOptions []ConfigOption `json:"config_options" validate:"omitempty,dive"`
	ConfigStatus  *string        `json:"config_status" validate:"omitempty,oneof=active inactive"`
}

func optionsToJSON(opts []ConfigOption) []byte {
	if opts == nil {
		opts = []ConfigOption{}
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

func optionsFromJSON(raw []byte) []ConfigOption {
	opts := []ConfigOption{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &opts)
	}
	return opts
}

func ToConfigDTO(m model.ConfigModel) ConfigDTO {
	dto := ConfigDTO{
		ConfigID:        m.ConfigID,
		ConfigName:      m.ConfigName,
		ConfigSlug:      m.ConfigSlug,
		ConfigOptions:   optionsFromJSON(m.ConfigOptions),
		ConfigStatus:    m.ConfigStatus,
		ConfigCreatedAt: m.ConfigCreatedAt,
		ConfigUpdatedAt: m.ConfigUpdatedAt,
	}
	if m.ConfigDeletedAt.Valid {
		t := m.ConfigDeletedAt.Time
		dto.ConfigDeletedAt = &t
	}
	return dto
}

func ToConfigDTOs(ms []model.ConfigModel) []ConfigDTO {
	out := make([]ConfigDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToConfigDTO(m))
	}
	return out
}

func (r CreateConfigRequest) ToModel() model.ConfigModel {
	status := r.ConfigStatus
	if status == "" {
		status = "active"
	}
	return model.ConfigModel{
		ConfigName:    r.ConfigName,
		ConfigOptions: optionsToJSON(r.ConfigOptions),
		ConfigStatus:  status,
	}
}

func (r UpdateConfigRequest) ApplyTo(m *model.ConfigModel) {
	if r.ConfigName != nil {
		m.ConfigName = *r.ConfigName
	}
	if r.ConfigOptions != nil {
		m.ConfigOptions = optionsToJSON(r.ConfigOptions)
	}
	if r.ConfigStatus != nil {
		m.ConfigStatus = *r.ConfigStatus
	}
}
