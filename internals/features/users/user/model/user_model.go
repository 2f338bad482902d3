// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	DisplayName  string     `gorm:"size:100" json:"display_name"`
	Bio          *string    `gorm:"type:text" json:"bio,omitempty"`
	Location     *string    `gorm:"size:255" json:"location,omitempty"`
	AvatarURL    *string    `gorm:"size:500" json:"avatar_url,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'user'" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `gorm:"type:timestamptz" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}
