package dto

import (
	"errors"
	"strings"
	"time"

	"storeadmin_backend/internals/features/marketing/coupons/model"
)

type CouponDTO struct {
	CouponID                string     `json:"coupon_id"`
	CouponCode              string     `json:"coupon_code"`
	CouponDescription       *string    `json:"coupon_description"`
	CouponDiscountType      string     `json:"coupon_discount_type"`
	CouponDiscountValue     float64    `json:"coupon_discount_value"`
	CouponMinOrderValue     *float64   `json:"coupon_min_order_value"`
	CouponMaxDiscountAmount *float64   `json:"coupon_max_discount_amount"`
	CouponUsageLimit        *int       `json:"coupon_usage_limit"`
	CouponUsedCount         int        `json:"coupon_used_count"`
	CouponStartDate         time.Time  `json:"coupon_start_date"`
	CouponEndDate           time.Time  `json:"coupon_end_date"`
	CouponStatus            string     `json:"coupon_status"`
	CouponCreatedAt         time.Time  `json:"coupon_created_at"`
	CouponUpdatedAt         time.Time  `json:"coupon_updated_at"`
	CouponDeletedAt         *time.Time `json:"coupon_deleted_at,omitempty"`
}

type CreateCouponRequest struct {
	CouponCode              string    `json:"coupon_code" validate:"required,min=3,max=50"`
	CouponDescription       *string   `json:"coupon_description"`
	CouponDiscountType      string    `json:"coupon_discount_type" validate:"required,oneof=percentage flat"`
	CouponDiscountValue     float64   `json:"coupon_discount_value" validate:"required,gt=0"`
	CouponMinOrderValue     *float64  `json:"coupon_min_order_value" validate:"omitempty,gte=0"`
	CouponMaxDiscountAmount *float64  `json:"coupon_max_discount_amount" validate:"omitempty,gt=0"`
	CouponUsageLimit        *int      `json:"coupon_usage_limit" validate:"omitempty,gt=0"`
	CouponStartDate         time.Time `json:"coupon_start_date" validate:"required"`
	CouponEndDate           time.Time `json:"coupon_end_date" validate:"required"`
	CouponStatus            string    `json:"coupon_status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCouponRequest struct {
	CouponCode              *string    `json:"coupon_code" validate:"omitempty,min=3,max=50"`
	CouponDescription       *string    `json:"coupon_description"`
	CouponDiscountType      *string    `json:"coupon_discount_type" validate:"omitempty,oneof=percentage flat"`
	CouponDiscountValue     *float64   `json:"coupon_discount_value" validate:"omitempty,gt=0"`
	CouponMinOrderValue     *float64   `json:"coupon_min_order_value" validate:"omitempty,gte=0"`
	CouponMaxDiscountAmount *float64   `json:"coupon_max_discount_amount" validate:"omitempty,gt=0"`
	CouponUsageLimit        *int       `json:"coupon_usage_limit" validate:"omitempty,gt=0"`
	CouponStartDate         *time.Time `json:"coupon_start_date"`
	CouponEndDate           *time.Time `json:"coupon_end_date"`
	CouponStatus            *string    `json:"coupon_status" validate:"omitempty,oneof=active inactive"`
}

var ErrCouponDateRange = errors.New("End date must be later than start date")

func (r CreateCouponRequest) ValidateDates() error {
	if !r.CouponEndDate.After(r.CouponStartDate) {
		return ErrCouponDateRange
	}
	return nil
}

// ValidateDates checks the range against the stored coupon for the fields
// the request leaves untouched.
func (r UpdateCouponRequest) ValidateDates(current model.CouponModel) error {
	start := current.CouponStartDate
	end := current.CouponEndDate
	if r.CouponStartDate != nil {
		start = *r.CouponStartDate
	}
	if r.CouponEndDate != nil {
		end = *r.CouponEndDate
	}
	if !end.After(start) {
		return ErrCouponDateRange
	}
	return nil
}

func ToCouponDTO(m model.CouponModel) CouponDTO {
	dto := CouponDTO{
		CouponID:                m.CouponID,
		CouponCode:              m.CouponCode,
		CouponDescription:       m.CouponDescription,
		CouponDiscountType:      m.CouponDiscountType,
		CouponDiscountValue:     m.CouponDiscountValue,
		CouponMinOrderValue:     m.CouponMinOrderValue,
		CouponMaxDiscountAmount: m.CouponMaxDiscountAmount,
		CouponUsageLimit:        m.CouponUsageLimit,
		CouponUsedCount:         m.CouponUsedCount,
		CouponStartDate:         m.CouponStartDate,
		CouponEndDate:           m.CouponEndDate,
		CouponStatus:            m.CouponStatus,
		CouponCreatedAt:         m.CouponCreatedAt,
		CouponUpdatedAt:         m.CouponUpdatedAt,
	}
	if m.CouponDeletedAt.Valid {
		t := m.CouponDeletedAt.Time
		dto.CouponDeletedAt = &t
	}
	return dto
}

func ToCouponDTOs(ms []model.CouponModel) []CouponDTO {
	out := make([]CouponDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCouponDTO(m))
	}
	return out
}

func (r CreateCouponRequest) ToModel() model.CouponModel {
	status := r.CouponStatus
	if status == "" {
		status = "active"
	}
	return model.CouponModel{
		CouponCode:              strings.ToUpper(strings.TrimSpace(r.CouponCode)),
		CouponDescription:       r.CouponDescription,
		CouponDiscountType:      r.CouponDiscountType,
		CouponDiscountValue:     r.CouponDiscountValue,
		CouponMinOrderValue:     r.CouponMinOrderValue,
		CouponMaxDiscountAmount: r.CouponMaxDiscountAmount,
		CouponUsageLimit:        r.CouponUsageLimit,
		CouponStartDate:         r.CouponStartDate,
		CouponEndDate:           r.CouponEndDate,
		CouponStatus:            status,
	}
}

func (r UpdateCouponRequest) ApplyTo(m *model.CouponModel) {
	if r.CouponCode != nil {
		m.CouponCode = strings.ToUpper(strings.TrimSpace(*r.CouponCode))
	}
	if r.CouponDescription != nil {
		m.CouponDescription = r.CouponDescription
	}
	if r.CouponDiscountType != nil {
		m.CouponDiscountType = *r.CouponDiscountType
	}
	if r.CouponDiscountValue != nil {
		m.CouponDiscountValue = *r.CouponDiscountValue
	}
	if r.CouponMinOrderValue != nil {
		m.CouponMinOrderValue = r.CouponMinOrderValue
	}
	if r.CouponMaxDiscountAmount != nil {
		m.CouponMaxDiscountAmount = r.CouponMaxDiscountAmount
	}
	if r.CouponUsageLimit != nil {
		m.CouponUsageLimit = r.CouponUsageLimit
	}
	if r.CouponStartDate != nil {
		m.CouponStartDate = *r.CouponStartDate
	}
	if r.CouponEndDate != nil {
		m.CouponEndDate = *r.CouponEndDate
	}
	if r.CouponStatus != nil {
		m.CouponStatus = *r.CouponStatus
	}
}
