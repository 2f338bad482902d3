// file: internals/features/posts/dto/post_dto.go
package dto

import (
	"github.com/google/uuid"

	model "iflow_backend/internals/features/posts/model"
)

type CreatePostRequest struct {
	HubID   *uuid.UUID `json:"hubId"`
	Content string     `json:"content" validate:"required,min=1,max=280"`
}

type LikePostRequest struct {
	Emoji string `json:"emoji" validate:"omitempty,max=16"`
}

// PostResponse: baris post + identitas penulis + agregat reaksi/komentar.
type PostResponse struct {
	model.PostModel
	Username     string  `json:"username"`
	DisplayName  string  `json:"display_name"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	LikeCount    int64   `json:"like_count"`
	CommentCount int64   `json:"comment_count"`
	IsLiked      bool    `json:"is_liked"`
}
