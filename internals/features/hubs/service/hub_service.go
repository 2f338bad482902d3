// file: internals/features/hubs/service/hub_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	hubDto "iflow_backend/internals/features/hubs/dto"
	hubModel "iflow_backend/internals/features/hubs/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

var ErrHubNotFound = errors.New("hub not found")

const maxHubList = 50

// ListHubs: hub aktif urut member_count DESC (maks 50), dengan flag
// is_member untuk viewer.
func ListHubs(ctx context.Context, db *gorm.DB, viewerID uuid.UUID) ([]hubDto.HubListItem, error) {
	var hubs []hubModel.HubModel
	if err := db.WithContext(ctx).
		Where("hub_is_active = true").
		Order("hub_member_count DESC").
		Limit(maxHubList).
		Find(&hubs).Error; err != nil {
		return nil, err
	}

	memberOf := map[uuid.UUID]bool{}
	if viewerID != uuid.Nil && len(hubs) > 0 {
		hubIDs := make([]uuid.UUID, 0, len(hubs))
		for _, h := range hubs {
			hubIDs = append(hubIDs, h.HubID)
		}
		var rows []hubModel.HubMemberModel
		if err := db.WithContext(ctx).
			Where("hub_member_hub_id IN ? AND hub_member_user_id = ? AND hub_member_is_active = true", hubIDs, viewerID).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			memberOf[r.HubMemberHubID] = true
		}
	}

	out := make([]hubDto.HubListItem, 0, len(hubs))
	for _, h := range hubs {
		out = append(out, hubDto.HubListItem{HubModel: h, IsMember: memberOf[h.HubID]})
	}
	return out, nil
}

// GetHub: detail hub aktif + anggota aktifnya.
func GetHub(ctx context.Context, db *gorm.DB, hubID, viewerID uuid.UUID) (*hubDto.HubDetail, error) {
	var hub hubModel.HubModel
	if err := db.WithContext(ctx).
		First(&hub, "hub_id = ? AND hub_is_active = true", hubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHubNotFound
		}
		return nil, err
	}

	var memberRows []hubModel.HubMemberModel
	if err := db.WithContext(ctx).
		Where("hub_member_hub_id = ? AND hub_member_is_active = true", hubID).
		Find(&memberRows).Error; err != nil {
		return nil, err
	}

	detail := hubDto.HubDetail{HubModel: hub, Members: []hubDto.HubMemberItem{}}
	if len(memberRows) > 0 {
		userIDs := make([]uuid.UUID, 0, len(memberRows))
		for _, m := range memberRows {
			userIDs = append(userIDs, m.HubMemberUserID)
			if m.HubMemberUserID == viewerID {
				detail.IsMember = true
			}
		}
		var users []userModel.UserModel
		if err := db.WithContext(ctx).
			Select("id", "username", "display_name", "avatar_url").
			Where("id IN ?", userIDs).
			Find(&users).Error; err != nil {
			return nil, err
		}
		usersByID := map[uuid.UUID]userModel.UserModel{}
		for _, u := range users {
			usersByID[u.ID] = u
		}
		for _, m := range memberRows {
			item := hubDto.HubMemberItem{UserID: m.HubMemberUserID, Role: m.HubMemberRole}
			if u, ok := usersByID[m.HubMemberUserID]; ok {
				item.Username = u.Username
				item.DisplayName = u.DisplayName
				item.AvatarURL = u.AvatarURL
			}
			detail.Members = append(detail.Members, item)
		}
	}
	return &detail, nil
}

// CreateHub membuat hub baru dan langsung mendaftarkan pembuatnya sebagai
// admin, keduanya dalam satu transaksi.
func CreateHub(ctx context.Context, db *gorm.DB, creatorID uuid.UUID, req hubDto.CreateHubRequest) (*hubModel.HubModel, error) {
	hub := hubModel.HubModel{
		HubName:        req.Name,
		HubDescription: req.Description,
		HubLocation:    req.Location,
		HubLatitude:    req.Latitude,
		HubLongitude:   req.Longitude,
		HubCreatedBy:   creatorID,
		HubMemberCount: 1,
		HubIsActive:    true,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hub).Error; err != nil {
			return err
		}
		member := hubModel.HubMemberModel{
			HubMemberHubID:    hub.HubID,
			HubMemberUserID:   creatorID,
			HubMemberRole:     "admin",
			HubMemberIsActive: true,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &hub, nil
}

// JoinHub: upsert keanggotaan (re-join mengaktifkan kembali baris lama),
// lalu member_count dihitung ulang dari baris aktif.
func JoinHub(ctx context.Context, db *gorm.DB, hubID, userID uuid.UUID) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&hubModel.HubModel{}).
		Where("hub_id = ? AND hub_is_active = true", hubID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrHubNotFound
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := hubModel.HubMemberModel{
			HubMemberHubID:    hubID,
			HubMemberUserID:   userID,
			HubMemberRole:     "member",
			HubMemberIsActive: true,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "hub_member_hub_id"},
				{Name: "hub_member_user_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"hub_member_is_active": true,
			}),
		}).Create(&member).Error; err != nil {
			return err
		}

		return tx.Model(&hubModel.HubModel{}).
			Where("hub_id = ?", hubID).
			Update("hub_member_count", tx.Model(&hubModel.HubMemberModel{}).
				Select("COUNT(*)").
				Where("hub_member_hub_id = ? AND hub_member_is_active = true", hubID)).
			Error
	})
}
