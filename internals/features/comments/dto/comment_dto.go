// file: internals/features/comments/dto/comment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentResponse: satu komentar + identitas penulis + jumlah like.
// ItemID menunjuk ke event/post/video/listing sesuai itemType di path.
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	UserID      uuid.UUID `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	LikeCount   int64     `json:"like_count"`
}
