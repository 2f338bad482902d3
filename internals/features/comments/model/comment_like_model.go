// file: internals/features/comments/model/comment_like_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentLikeModel: like komentar, maksimal satu per (comment, user).
// comment_id menunjuk ke salah satu dari empat tabel komentar, jadi tanpa FK.
type CommentLikeModel struct {
	CommentLikeID        uuid.UUID `gorm:"type:uuid;primaryKey;column:comment_like_id" json:"comment_like_id"`
	CommentLikeCommentID uuid.UUID `gorm:"type:uuid;not null;column:comment_like_comment_id;uniqueIndex:uq_comment_likes_comment_user" json:"comment_like_comment_id"`
	CommentLikeUserID    uuid.UUID `gorm:"type:uuid;not null;column:comment_like_user_id;uniqueIndex:uq_comment_likes_comment_user" json:"comment_like_user_id"`
	CommentLikeCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:comment_like_created_at" json:"comment_like_created_at"`
}

func (CommentLikeModel) TableName() string { return "comment_likes" }

func (m *CommentLikeModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentLikeID == uuid.Nil {
		m.CommentLikeID = uuid.New()
	}
	return nil
}
