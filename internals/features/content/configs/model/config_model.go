package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ConfigModel struct {
	ConfigID      string         `gorm:"column:config_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ConfigName    string         `gorm:"column:config_name;type:varchar(150);not null"`
	ConfigSlug    string         `gorm:"column:config_slug;type:varchar(160);not null;uniqueIndex:uq_configs_slug,where:config_deleted_at IS NULL"`
	ConfigOptions datatypes.JSON `gorm:"column:config_options;type:jsonb;default:'[]'"`
	ConfigStatus  string         `gorm:"column:config_status;type:varchar(20);default:'active'"`

	ConfigCreatedAt time.Time      `gorm:"column:config_created_at;autoCreateTime"`
	ConfigUpdatedAt time.Time      `gorm:"column:config_updated_at;autoUpdateTime"`
	ConfigDeletedAt gorm.DeletedAt `gorm:"column:config_deleted_at;index"`
}

func (ConfigModel) TableName() string {
	return "configs"
}
