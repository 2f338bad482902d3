// file: internals/features/marketplace/model/listing_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
	ListingStatusClosed = "closed"
)

// ListingModel: barang/jasa di marketplace. URL gambar disimpan sebagai
// text[] (pq.StringArray), bukan tabel terpisah.
type ListingModel struct {
	ListingID          uuid.UUID      `gorm:"type:uuid;primaryKey;column:listing_id" json:"listing_id"`
	ListingUserID      uuid.UUID      `gorm:"type:uuid;not null;index;column:listing_user_id" json:"listing_user_id"`
	ListingHubID       *uuid.UUID     `gorm:"type:uuid;index;column:listing_hub_id" json:"listing_hub_id,omitempty"`
	ListingTitle       string         `gorm:"size:255;not null;column:listing_title" json:"listing_title"`
	ListingDescription *string        `gorm:"type:text;column:listing_description" json:"listing_description,omitempty"`
	ListingPrice       *float64       `gorm:"type:numeric(12,2);column:listing_price" json:"listing_price,omitempty"`
	ListingCondition   *string        `gorm:"size:50;column:listing_condition" json:"listing_condition,omitempty"`
	ListingType        *string        `gorm:"size:50;column:listing_type" json:"listing_type,omitempty"`
	ListingLocation    *string        `gorm:"size:255;column:listing_location" json:"listing_location,omitempty"`
	ListingImageURLs   pq.StringArray `gorm:"type:text[];column:listing_image_urls" json:"listing_image_urls"`
	ListingStatus      string         `gorm:"type:varchar(20);not null;default:'active';column:listing_status" json:"listing_status"`
	ListingCreatedAt   time.Time      `gorm:"type:timestamptz;autoCreateTime;column:listing_created_at" json:"listing_created_at"`
	ListingUpdatedAt   time.Time      `gorm:"type:timestamptz;autoUpdateTime;column:listing_updated_at" json:"listing_updated_at"`
}

func (ListingModel) TableName() string { return "marketplace_listings" }

func (m *ListingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ListingID == uuid.Nil {
		m.ListingID = uuid.New()
	}
	if m.ListingStatus == "" {
		m.ListingStatus = ListingStatusActive
	}
	return nil
}
