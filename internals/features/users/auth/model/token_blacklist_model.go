package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklistModel menyimpan token hasil logout sampai kedaluwarsa.
type TokenBlacklistModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time      `gorm:"type:timestamptz" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
