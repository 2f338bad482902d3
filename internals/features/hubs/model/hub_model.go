// file: internals/features/hubs/model/hub_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HubModel merepresentasikan komunitas berbasis lokasi (neighborhood).
type HubModel struct {
	HubID          uuid.UUID `gorm:"type:uuid;primaryKey;column:hub_id" json:"hub_id"`
	HubName        string    `gorm:"size:100;not null;column:hub_name" json:"hub_name"`
	HubDescription *string   `gorm:"type:text;column:hub_description" json:"hub_description,omitempty"`
	HubLocation    *string   `gorm:"size:255;column:hub_location" json:"hub_location,omitempty"`
	HubLatitude    *float64  `gorm:"column:hub_latitude" json:"hub_latitude,omitempty"`
	HubLongitude   *float64  `gorm:"column:hub_longitude" json:"hub_longitude,omitempty"`
	HubAvatarURL   *string   `gorm:"size:500;column:hub_avatar_url" json:"hub_avatar_url,omitempty"`
	HubMemberCount int       `gorm:"not null;default:0;column:hub_member_count" json:"hub_member_count"`
	HubIsActive    bool      `gorm:"not null;default:true;column:hub_is_active" json:"hub_is_active"`
	HubCreatedBy   uuid.UUID `gorm:"type:uuid;not null;column:hub_created_by" json:"hub_created_by"`
	HubCreatedAt   time.Time `gorm:"type:timestamptz;autoCreateTime;column:hub_created_at" json:"hub_created_at"`
	HubUpdatedAt   time.Time `gorm:"type:timestamptz;autoUpdateTime;column:hub_updated_at" json:"hub_updated_at"`
}

func (HubModel) TableName() string { return "hubs" }

func (m *HubModel) BeforeCreate(tx *gorm.DB) error {
	if m.HubID == uuid.Nil {
		m.HubID = uuid.New()
	}
	return nil
}
