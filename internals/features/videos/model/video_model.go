// file: internals/features/videos/model/video_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoModel: video pendek di feed, opsional premium berbayar.
type VideoModel struct {
	VideoID           uuid.UUID  `gorm:"type:uuid;primaryKey;column:video_id" json:"video_id"`
	VideoUserID       uuid.UUID  `gorm:"type:uuid;not null;index;column:video_user_id" json:"video_user_id"`
	VideoHubID        *uuid.UUID `gorm:"type:uuid;index;column:video_hub_id" json:"video_hub_id,omitempty"`
	VideoTitle        string     `gorm:"size:255;not null;column:video_title" json:"video_title"`
	VideoDescription  *string    `gorm:"type:text;column:video_description" json:"video_description,omitempty"`
	VideoURL          string     `gorm:"size:500;not null;column:video_url" json:"video_url"`
	VideoThumbnailURL *string    `gorm:"size:500;column:video_thumbnail_url" json:"video_thumbnail_url,omitempty"`
	VideoIsPremium    bool       `gorm:"not null;default:false;column:video_is_premium" json:"video_is_premium"`
	VideoPremiumPrice *float64   `gorm:"type:numeric(12,2);column:video_premium_price" json:"video_premium_price,omitempty"`
	VideoIsActive     bool       `gorm:"not null;default:true;column:video_is_active" json:"video_is_active"`
	VideoCreatedAt    time.Time  `gorm:"type:timestamptz;autoCreateTime;column:video_created_at" json:"video_created_at"`
	VideoUpdatedAt    time.Time  `gorm:"type:timestamptz;autoUpdateTime;column:video_updated_at" json:"video_updated_at"`
}

func (VideoModel) TableName() string { return "videos" }

func (m *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoID == uuid.Nil {
		m.VideoID = uuid.New()
	}
	return nil
}

// VideoLikeModel: like video, satu per (video, user).
type VideoLikeModel struct {
	VideoLikeID        uuid.UUID `gorm:"type:uuid;primaryKey;column:video_like_id" json:"video_like_id"`
	VideoLikeVideoID   uuid.UUID `gorm:"type:uuid;not null;column:video_like_video_id;uniqueIndex:uq_video_likes_video_user" json:"video_like_video_id"`
	VideoLikeUserID    uuid.UUID `gorm:"type:uuid;not null;column:video_like_user_id;uniqueIndex:uq_video_likes_video_user" json:"video_like_user_id"`
	VideoLikeCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:video_like_created_at" json:"video_like_created_at"`
}

func (VideoLikeModel) TableName() string { return "video_likes" }

func (m *VideoLikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoLikeID == uuid.Nil {
		m.VideoLikeID = uuid.New()
	}
	return nil
}

// VideoPropTagModel: join table video ↔ prop tag.
type VideoPropTagModel struct {
	VideoPropTagID      uuid.UUID `gorm:"type:uuid;primaryKey;column:video_prop_tag_id" json:"video_prop_tag_id"`
	VideoPropTagVideoID uuid.UUID `gorm:"type:uuid;not null;column:video_prop_tag_video_id;uniqueIndex:uq_video_prop_tags" json:"video_prop_tag_video_id"`
	VideoPropTagTagID   uuid.UUID `gorm:"type:uuid;not null;column:video_prop_tag_tag_id;uniqueIndex:uq_video_prop_tags" json:"video_prop_tag_tag_id"`
}

func (VideoPropTagModel) TableName() string { return "video_prop_tags" }

func (m *VideoPropTagModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoPropTagID == uuid.Nil {
		m.VideoPropTagID = uuid.New()
	}
	return nil
}
