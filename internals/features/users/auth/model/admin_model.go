package model

import (
	"time"
)

type AdminModel struct {
	AdminID        string    `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	AdminName      string    `gorm:"column:admin_name;type:varchar(100);not null"`
	AdminEmail     string    `gorm:"column:admin_email;type:varchar(150);not null;unique"`
	AdminPassword  string    `gorm:"column:admin_password;type:text;not null"`
	AdminIsActive  bool      `gorm:"column:admin_is_active;default:true"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime"`
}

func (AdminModel) TableName() string {
	return "admins"
}
