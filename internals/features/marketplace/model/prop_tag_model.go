// file: internals/features/marketplace/model/prop_tag_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropTagModel: tag properti (mis. "bike", "furniture"). Dipakai lintas
// fitur: listing marketplace dan video.
type PropTagModel struct {
	PropTagID       uuid.UUID `gorm:"type:uuid;primaryKey;column:prop_tag_id" json:"prop_tag_id"`
	PropTagName     string    `gorm:"size:50;not null;uniqueIndex;column:prop_tag_name" json:"prop_tag_name"`
	PropTagCategory *string   `gorm:"size:50;column:prop_tag_category" json:"prop_tag_category,omitempty"`
}

func (PropTagModel) TableName() string { return "prop_tags" }

func (m *PropTagModel) BeforeCreate(tx *gorm.DB) error {
	if m.PropTagID == uuid.Nil {
		m.PropTagID = uuid.New()
	}
	return nil
}

// ListingPropTagModel: join table listing ↔ prop tag.
type ListingPropTagModel struct {
	ListingPropTagID        uuid.UUID `gorm:"type:uuid;primaryKey;column:listing_prop_tag_id" json:"listing_prop_tag_id"`
	ListingPropTagListingID uuid.UUID `gorm:"type:uuid;not null;column:listing_prop_tag_listing_id;uniqueIndex:uq_listing_prop_tags" json:"listing_prop_tag_listing_id"`
	ListingPropTagTagID     uuid.UUID `gorm:"type:uuid;not null;column:listing_prop_tag_tag_id;uniqueIndex:uq_listing_prop_tags" json:"listing_prop_tag_tag_id"`
}

func (ListingPropTagModel) TableName() string { return "marketplace_prop_tags" }

func (m *ListingPropTagModel) BeforeCreate(tx *gorm.DB) error {
	if m.ListingPropTagID == uuid.Nil {
		m.ListingPropTagID = uuid.New()
	}
	return nil
}
