// file: internals/features/messages/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "iflow_backend/internals/features/messages/model"
)

type SendMessageRequest struct {
	Content  string  `json:"content" validate:"required,min=1,max=5000"`
	MediaURL *string `json:"mediaUrl" validate:"omitempty,url,max=500"`
}

type OpenConversationRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

type ParticipantItem struct {
	UserID      uuid.UUID `json:"userId"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
}

// ConversationResponse: percakapan + lawan bicara + preview pesan terakhir.
type ConversationResponse struct {
	model.ConversationModel
	Participants  []ParticipantItem `json:"participants"`
	LastMessage   *string           `json:"last_message,omitempty"`
	LastMessageAt *time.Time        `json:"last_message_at,omitempty"`
}

// MessageResponse: pesan + identitas pengirim.
type MessageResponse struct {
	model.MessageModel
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}
