// file: internals/features/hubs/model/hub_member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HubMemberModel: keanggotaan user di sebuah hub. Satu user maksimal
// satu baris per hub.
type HubMemberModel struct {
	HubMemberID       uuid.UUID `gorm:"type:uuid;primaryKey;column:hub_member_id" json:"hub_member_id"`
	HubMemberHubID    uuid.UUID `gorm:"type:uuid;not null;column:hub_member_hub_id;uniqueIndex:uq_hub_members_hub_user" json:"hub_member_hub_id"`
	HubMemberUserID   uuid.UUID `gorm:"type:uuid;not null;column:hub_member_user_id;uniqueIndex:uq_hub_members_hub_user" json:"hub_member_user_id"`
	HubMemberRole     string    `gorm:"type:varchar(20);not null;default:'member';column:hub_member_role" json:"hub_member_role"`
	HubMemberIsActive bool      `gorm:"not null;default:true;column:hub_member_is_active" json:"hub_member_is_active"`
	HubMemberJoinedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:hub_member_joined_at" json:"hub_member_joined_at"`
}

func (HubMemberModel) TableName() string { return "hub_members" }

func (m *HubMemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.HubMemberID == uuid.Nil {
		m.HubMemberID = uuid.New()
	}
	return nil
}
