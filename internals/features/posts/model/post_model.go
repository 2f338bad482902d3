// file: internals/features/posts/model/post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel: update singkat (maks 280 karakter) di feed, opsional terikat hub.
type PostModel struct {
	PostID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:post_id" json:"post_id"`
	PostUserID    uuid.UUID  `gorm:"type:uuid;not null;index;column:post_user_id" json:"post_user_id"`
	PostHubID     *uuid.UUID `gorm:"type:uuid;index;column:post_hub_id" json:"post_hub_id,omitempty"`
	PostContent   string     `gorm:"size:280;not null;column:post_content" json:"post_content"`
	PostIsPinned  bool       `gorm:"not null;default:false;column:post_is_pinned" json:"post_is_pinned"`
	PostIsPublic  bool       `gorm:"not null;default:true;column:post_is_public" json:"post_is_public"`
	PostCreatedAt time.Time  `gorm:"type:timestamptz;autoCreateTime;column:post_created_at" json:"post_created_at"`
	PostUpdatedAt time.Time  `gorm:"type:timestamptz;autoUpdateTime;column:post_updated_at" json:"post_updated_at"`
}

func (PostModel) TableName() string { return "posts" }

func (m *PostModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostID == uuid.Nil {
		m.PostID = uuid.New()
	}
	return nil
}
