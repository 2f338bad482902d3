// file: internals/features/videos/dto/video_dto.go
package dto

import (
	"github.com/google/uuid"

	model "iflow_backend/internals/features/videos/model"
)

type UploadVideoRequest struct {
	HubID        *uuid.UUID  `json:"hubId"`
	Title        string      `json:"title" validate:"required,max=255"`
	Description  *string     `json:"description" validate:"omitempty,max=5000"`
	VideoURL     string      `json:"videoUrl" validate:"required,url,max=500"`
	ThumbnailURL *string     `json:"thumbnailUrl" validate:"omitempty,url,max=500"`
	IsPremium    bool        `json:"isPremium"`
	PremiumPrice *float64    `json:"premiumPrice" validate:"omitempty,min=0"`
	PropTags     []uuid.UUID `json:"propTags"`
}

type VideoPropTagItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category *string   `json:"category,omitempty"`
}

// VideoResponse: baris video + pengunggah, prop tags, dan is_liked viewer.
type VideoResponse struct {
	model.VideoModel
	Username    string             `json:"username"`
	DisplayName string             `json:"display_name"`
	AvatarURL   *string            `json:"avatar_url,omitempty"`
	PropTags    []VideoPropTagItem `json:"prop_tags"`
	IsLiked     bool               `json:"is_liked"`
}
