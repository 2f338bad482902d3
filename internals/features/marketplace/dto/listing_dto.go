// file: internals/features/marketplace/dto/listing_dto.go
package dto

import (
	"github.com/google/uuid"

	model "iflow_backend/internals/features/marketplace/model"
)

type CreateListingRequest struct {
	HubID       *uuid.UUID  `json:"hubId"`
	Title       string      `json:"title" validate:"required,max=255"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	Price       *float64    `json:"price" validate:"omitempty,min=0"`
	Condition   *string     `json:"condition" validate:"omitempty,max=50"`
	ListingType *string     `json:"listingType" validate:"omitempty,max=50"`
	Location    *string     `json:"location" validate:"omitempty,max=255"`
	ImageURLs   []string    `json:"imageUrls" validate:"omitempty,max=10,dive,url"`
	PropTags    []uuid.UUID `json:"propTags"`
}

type PropTagItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListingResponse: listing + identitas penjual + prop tags teragregasi.
type ListingResponse struct {
	model.ListingModel
	Username    string        `json:"username"`
	DisplayName string        `json:"display_name"`
	AvatarURL   *string       `json:"avatar_url,omitempty"`
	PropTags    []PropTagItem `json:"prop_tags"`
}
