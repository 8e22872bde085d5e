package model

import (
	"time"

	"gorm.io/gorm"
)

type CouponModel struct {
	CouponID                string    `gorm:"column:coupon_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CouponCode              string    `gorm:"column:coupon_code;type:varchar(50);not null;uniqueIndex:uq_coupons_code,where:coupon_deleted_at IS NULL"`
	CouponDescription       *string   `gorm:"column:coupon_description;type:text"`
	CouponDiscountType      string    `gorm:"column:coupon_discount_type;type:varchar(20);not null"`
	CouponDiscountValue     float64   `gorm:"column:coupon_discount_value;type:numeric(12,2);not null"`
	CouponMinOrderValue     *float64  `gorm:"column:coupon_min_order_value;type:numeric(12,2)"`
	CouponMaxDiscountAmount *float64  `gorm:"column:coupon_max_discount_amount;type:numeric(12,2)"`
	CouponUsageLimit        *int      `gorm:"column:coupon_usage_limit"`
	CouponUsedCount         int       `gorm:"column:coupon_used_count;default:0"`
	CouponStartDate         time.Time `gorm:"column:coupon_start_date;not null"`
	CouponEndDate           time.Time `gorm:"column:coupon_end_date;not null"`
	CouponStatus            string    `gorm:"column:coupon_status;type:varchar(20);default:'active'"`

	CouponCreatedAt time.Time      `gorm:"column:coupon_created_at;autoCreateTime"`
	CouponUpdatedAt time.Time      `gorm:"column:coupon_updated_at;autoUpdateTime"`
	CouponDeletedAt gorm.DeletedAt `gorm:"column:coupon_deleted_at;index"`
}

func (CouponModel) TableName() string {
	return "coupons"
}
