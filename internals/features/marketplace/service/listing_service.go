// file: internals/features/marketplace/service/listing_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	listingDto "iflow_backend/internals/features/marketplace/dto"
	listingModel "iflow_backend/internals/features/marketplace/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

type ListingFilter struct {
	HubID   *uuid.UUID
	PropTag *uuid.UUID
	Status  string
	Limit   int
}

const (
	defaultListingLimit = 50
	maxListingLimit     = 100
)

// ListListings: listing terbaru dulu, difilter status (default active),
// hub, dan prop tag; beranotasi penjual + prop tags.
func ListListings(ctx context.Context, db *gorm.DB, filter ListingFilter) ([]listingDto.ListingResponse, error) {
	status := filter.Status
	if status == "" {
		status = listingModel.ListingStatusActive
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListingLimit
	}
	if limit > maxListingLimit {
		limit = maxListingLimit
	}

	q := db.WithContext(ctx).
		Model(&listingModel.ListingModel{}).
		Where("listing_status = ?", status)
	if filter.HubID != nil {
		q = q.Where("listing_hub_id = ?", *filter.HubID)
	}
	if filter.PropTag != nil {
		q = q.Where("listing_id IN (?)", db.
			Model(&listingModel.ListingPropTagModel{}).
			Select("listing_prop_tag_listing_id").
			Where("listing_prop_tag_tag_id = ?", *filter.PropTag))
	}

	var listings []listingModel.ListingModel
	if err := q.Order("listing_created_at DESC").Limit(limit).Find(&listings).Error; err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return []listingDto.ListingResponse{}, nil
	}

	listingIDs := make([]uuid.UUID, 0, len(listings))
	sellerIDs := make([]uuid.UUID, 0, len(listings))
	for _, l := range listings {
		listingIDs = append(listingIDs, l.ListingID)
		sellerIDs = append(sellerIDs, l.ListingUserID)
	}

	var sellers []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name", "avatar_url").
		Where("id IN ?", sellerIDs).
		Find(&sellers).Error; err != nil {
		return nil, err
	}
	sellerByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range sellers {
		sellerByID[u.ID] = u
	}

	tagsByListing, err := loadPropTags(ctx, db, listingIDs)
	if err != nil {
		return nil, err
	}

	out := make([]listingDto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp := listingDto.ListingResponse{
			ListingModel: l,
			PropTags:     tagsByListing[l.ListingID],
		}
		if resp.PropTags == nil {
			resp.PropTags = []listingDto.PropTagItem{}
		}
		if u, ok := sellerByID[l.ListingUserID]; ok {
			resp.Username = u.Username
			resp.DisplayName = u.DisplayName
			resp.AvatarURL = u.AvatarURL
		}
		out = append(out, resp)
	}
	return out, nil
}

func loadPropTags(ctx context.Context, db *gorm.DB, listingIDs []uuid.UUID) (map[uuid.UUID][]listingDto.PropTagItem, error) {
	var joins []listingModel.ListingPropTagModel
	if err := db.WithContext(ctx).
		Where("listing_prop_tag_listing_id IN ?", listingIDs).
		Find(&joins).Error; err != nil {
		return nil, err
	}
	result := map[uuid.UUID][]listingDto.PropTagItem{}
	if len(joins) == 0 {
		return result, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(joins))
	for _, j := range joins {
		tagIDs = append(tagIDs, j.ListingPropTagTagID)
	}
	var tags []listingModel.PropTagModel
	if err := db.WithContext(ctx).
		Where("prop_tag_id IN ?", tagIDs).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	tagByID := map[uuid.UUID]listingModel.PropTagModel{}
	for _, t := range tags {
		tagByID[t.PropTagID] = t
	}

	for _, j := range joins {
		if t, ok := tagByID[j.ListingPropTagTagID]; ok {
			result[j.ListingPropTagListingID] = append(result[j.ListingPropTagListingID],
				listingDto.PropTagItem{ID: t.PropTagID, Name: t.PropTagName})
		}
	}
	return result, nil
}

// CreateListing menyimpan listing + baris prop tag-nya dalam satu transaksi.
func CreateListing(ctx context.Context, db *gorm.DB, sellerID uuid.UUID, req listingDto.CreateListingRequest) (*listingModel.ListingModel, error) {
	listing := listingModel.ListingModel{
		ListingUserID:      sellerID,
		ListingHubID:       req.HubID,
		ListingTitle:       req.Title,
		ListingDescription: req.Description,
		ListingPrice:       req.Price,
		ListingCondition:   req.Condition,
		ListingType:        req.ListingType,
		ListingLocation:    req.Location,
		ListingImageURLs:   req.ImageURLs,
		ListingStatus:      listingModel.ListingStatusActive,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}
		for _, tagID := range req.PropTags {
			join := listingModel.ListingPropTagModel{
				ListingPropTagListingID: listing.ListingID,
				ListingPropTagTagID:     tagID,
			}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
