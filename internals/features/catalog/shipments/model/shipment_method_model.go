package model

import (
	"time"

	"gorm.io/gorm"
)

type ShipmentMethodModel struct {
	ShipmentMethodID            string  `gorm:"column:shipment_method_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ShipmentMethodName          string  `gorm:"column:shipment_method_name;type:varchar(150);not null"`
	ShipmentMethodDescription   *string `gorm:"column:shipment_method_description;type:text"`
	ShipmentMethodRate          float64 `gorm:"column:shipment_method_rate;type:numeric(12,2);not null"`
	ShipmentMethodEstimatedDays int     `gorm:"column:shipment_method_estimated_days;default:0"`
	ShipmentMethodStatus        string  `gorm:"column:shipment_method_status;type:varchar(20);default:'active'"`

	ShipmentMethodCreatedAt time.Time      `gorm:"column:shipment_method_created_at;autoCreateTime"`
	ShipmentMethodUpdatedAt time.Time      `gorm:"column:shipment_method_updated_at;autoUpdateTime"`
	ShipmentMethodDeletedAt gorm.DeletedAt `gorm:"column:shipment_method_deleted_at;index"`
}

func (ShipmentMethodModel) TableName() string {
	return "shipment_methods"
}
