// file: internals/features/users/user/model/user_link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLinkModel: tautan eksternal di profil user (IG, web pribadi, dst).
type UserLinkModel struct {
	UserLinkID          uuid.UUID `gorm:"type:uuid;primaryKey;column:user_link_id" json:"user_link_id"`
	UserLinkUserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_link_user_id" json:"user_link_user_id"`
	UserLinkPlatform    string    `gorm:"size:50;not null;column:user_link_platform" json:"user_link_platform"`
	UserLinkURL         string    `gorm:"size:500;not null;column:user_link_url" json:"user_link_url"`
	UserLinkDisplayText *string   `gorm:"size:100;column:user_link_display_text" json:"user_link_display_text,omitempty"`
	UserLinkCreatedAt   time.Time `gorm:"type:timestamptz;autoCreateTime;column:user_link_created_at" json:"user_link_created_at"`
}

func (UserLinkModel) TableName() string { return "user_links" }

func (m *UserLinkModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserLinkID == uuid.Nil {
		m.UserLinkID = uuid.New()
	}
	return nil
}
