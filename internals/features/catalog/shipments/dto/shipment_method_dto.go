package dto

import (
	"time"

	"storeadmin_backend/internals/features/catalog/shipments/model"
)

type ShipmentMethodDTO struct {
	ShipmentMethodID            string     `json:"shipment_method_id"`
	ShipmentMethodName          string     `json:"shipment_method_name"`
	ShipmentMethodDescription   *string    `json:"shipment_method_description"`
	ShipmentMethodRate          float64    `json:"shipment_method_rate"`
	ShipmentMethodEstimatedDays int        `json:"shipment_method_estimated_days"`
	ShipmentMethodStatus        string     `json:"shipment_method_status"`
	ShipmentMethodCreatedAt     time.Time  `json:"shipment_method_created_at"`
	ShipmentMethodUpdatedAt     time.Time  `json:"shipment_method_updated_at"`
	ShipmentMethodDeletedAt     *time.Time `json:"shipment_method_deleted_at,omitempty"`
}

type CreateShipmentMethodRequest struct {
	ShipmentMethodName          string  `json:"shipment_method_name" validate:"required,min=2,max=150"`
	ShipmentMethodDescription   *string `json:"shipment_method_description"`
	ShipmentMethodRate          float64 `json:"shipment_method_rate" validate:"gte=0"`
	ShipmentMethodEstimatedDays int     `json:"shipment_method_estimated_days" validate:"gte=0"`
	ShipmentMethodStatus        string  `json:"shipment_method_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateShipmentMethodRequest struct {
	ShipmentMethodName          *string  `json:"shipment_method_name" validate:"omitempty,min=2,max=150"`
	ShipmentMethodDescription   *string  `json:"shipment_method_description"`
	ShipmentMethodRate          *float64 `json:"shipment_method_rate" validate:"omitempty,gte=0"`
	ShipmentMethodEstimatedDays *int     `json:"shipment_method_estimated_days" validate:"omitempty,gte=0"`
	ShipmentMethodStatus        *string  `json:"shipment_method_status" validate:"omitempty,oneof=active inactive"`
}

func ToShipmentMethodDTO(m model.ShipmentMethodModel) ShipmentMethodDTO {
	dto := ShipmentMethodDTO{
		ShipmentMethodID:            m.ShipmentMethodID,
		ShipmentMethodName:          m.ShipmentMethodName,
		ShipmentMethodDescription:   m.ShipmentMethodDescription,
		ShipmentMethodRate:          m.ShipmentMethodRate,
		ShipmentMethodEstimatedDays: m.ShipmentMethodEstimatedDays,
		ShipmentMethodStatus:        m.ShipmentMethodStatus,
		ShipmentMethodCreatedAt:     m.ShipmentMethodCreatedAt,
		ShipmentMethodUpdatedAt:     m.ShipmentMethodUpdatedAt,
	}
	if m.ShipmentMethodDeletedAt.Valid {
		t := m.ShipmentMethodDeletedAt.Time
		dto.ShipmentMethodDeletedAt = &t
	}
	return dto
}

func ToShipmentMethodDTOs(ms []model.ShipmentMethodModel) []ShipmentMethodDTO {
	out := make([]ShipmentMethodDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToShipmentMethodDTO(m))
	}
	return out
}

func (r CreateShipmentMethodRequest) ToModel() model.ShipmentMethodModel {
	status := r.ShipmentMethodStatus
	if status == "" {
		status = "active"
	}
	return model.ShipmentMethodModel{
		ShipmentMethodName:          r.ShipmentMethodName,
		ShipmentMethodDescription:   r.ShipmentMethodDescription,
		ShipmentMethodRate:          r.ShipmentMethodRate,
		ShipmentMethodEstimatedDays: r.ShipmentMethodEstimatedDays,
		ShipmentMethodStatus:        status,
	}
}

func (r UpdateShipmentMethodRequest) ApplyTo(m *model.ShipmentMethodModel) {
	if r.ShipmentMethodName != nil {
		m.ShipmentMethodName = *r.ShipmentMethodName
	}
	if r.ShipmentMethodDescription != nil {
		m.ShipmentMethodDescription = r.ShipmentMethodDescription
	}
	if r.ShipmentMethodRate != nil {
		m.ShipmentMethodRate = *r.ShipmentMethodRate
	}
	if r.ShipmentMethodEstimatedDays != nil {
		m.ShipmentMethodEstimatedDays = *r.ShipmentMethodEstimatedDays
	}
	if r.ShipmentMethodStatus != nil {
		m.ShipmentMethodStatus = *r.ShipmentMethodStatus
	}
}
