package model

import (
	"time"
)

// TokenBlacklist holds tokens invalidated by logout until they expire.
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time `json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
