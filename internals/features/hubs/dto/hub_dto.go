// file: internals/features/hubs/dto/hub_dto.go
package dto

import (
	"github.com/google/uuid"

	model "iflow_backend/internals/features/hubs/model"
)

type CreateHubRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// HubListItem: baris hub + status keanggotaan viewer.
type HubListItem struct {
	model.HubModel
	IsMember bool `json:"is_member"`
}

// HubMemberItem: satu anggota pada detail hub.
type HubMemberItem struct {
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
}

// HubDetail: hub + daftar anggota aktif.
type HubDetail struct {
	model.HubModel
	IsMember bool            `json:"is_member"`
	Members  []HubMemberItem `json:"members"`
}
