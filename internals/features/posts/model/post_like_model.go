// file: internals/features/posts/model/post_like_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReactionEmoji dipakai kalau body like tidak menyebut emoji.
const DefaultReactionEmoji = "❤️"

// PostLikeModel: reaksi emoji per user per post. Satu user boleh beberapa
// emoji berbeda di post yang sama, tapi tidak dobel emoji yang sama.
type PostLikeModel struct {
	PostLikeID        uuid.UUID `gorm:"type:uuid;primaryKey;column:post_like_id" json:"post_like_id"`
	PostLikePostID    uuid.UUID `gorm:"type:uuid;not null;column:post_like_post_id;uniqueIndex:uq_post_likes_post_user_emoji" json:"post_like_post_id"`
	PostLikeUserID    uuid.UUID `gorm:"type:uuid;not null;column:post_like_user_id;uniqueIndex:uq_post_likes_post_user_emoji" json:"post_like_user_id"`
	PostLikeEmoji     string    `gorm:"size:16;not null;column:post_like_emoji;uniqueIndex:uq_post_likes_post_user_emoji" json:"post_like_emoji"`
	PostLikeCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:post_like_created_at" json:"post_like_created_at"`
}

func (PostLikeModel) TableName() string { return "post_likes" }

func (m *PostLikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostLikeID == uuid.Nil {
		m.PostLikeID = uuid.New()
	}
	return nil
}
