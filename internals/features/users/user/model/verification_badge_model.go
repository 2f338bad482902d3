// file: internals/features/users/user/model/verification_badge_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationBadgeModel struct {
	VerificationBadgeID         uuid.UUID `gorm:"type:uuid;primaryKey;column:verification_badge_id" json:"verification_badge_id"`
	VerificationBadgeUserID     uuid.UUID `gorm:"type:uuid;not null;index;column:verification_badge_user_id" json:"verification_badge_user_id"`
	VerificationBadgeType       string    `gorm:"size:50;not null;column:verification_badge_type" json:"verification_badge_type"`
	VerificationBadgeIsActive   bool      `gorm:"not null;default:true;column:verification_badge_is_active" json:"verification_badge_is_active"`
	VerificationBadgeVerifiedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:verification_badge_verified_at" json:"verification_badge_verified_at"`
}

func (VerificationBadgeModel) TableName() string { return "verification_badges" }

func (m *VerificationBadgeModel) BeforeCreate(tx *gorm.DB) error {
	if m.VerificationBadgeID == uuid.Nil {
		m.VerificationBadgeID = uuid.New()
	}
	return nil
}
