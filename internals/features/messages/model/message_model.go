// file: internals/features/messages/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationModel: percakapan DM. Saat ini hanya direct (2 orang);
// is_group disiapkan untuk grup.
type ConversationModel struct {
	ConversationID        uuid.UUID `gorm:"type:uuid;primaryKey;column:conversation_id" json:"conversation_id"`
	ConversationIsGroup   bool      `gorm:"not null;default:false;column:conversation_is_group" json:"conversation_is_group"`
	ConversationCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:conversation_created_at" json:"conversation_created_at"`
}

func (ConversationModel) TableName() string { return "conversations" }

func (m *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ConversationID == uuid.Nil {
		m.ConversationID = uuid.New()
	}
	return nil
}

// ConversationParticipantModel memakai kolom polos supaya query
// keanggotaan/pencarian direct conversation tetap ringkas.
type ConversationParticipantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;column:conversation_id;uniqueIndex:uq_conversation_participants" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:uq_conversation_participants" json:"user_id"`
	CreatedAt      time.Time `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
}

func (ConversationParticipantModel) TableName() string { return "conversation_participants" }

func (m *ConversationParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MessageModel: satu pesan dalam percakapan.
type MessageModel struct {
	MessageID             uuid.UUID `gorm:"type:uuid;primaryKey;column:message_id" json:"message_id"`
	MessageConversationID uuid.UUID `gorm:"type:uuid;not null;index;column:message_conversation_id" json:"message_conversation_id"`
	MessageSenderID       uuid.UUID `gorm:"type:uuid;not null;column:message_sender_id" json:"message_sender_id"`
	MessageContent        string    `gorm:"type:text;not null;column:message_content" json:"message_content"`
	MessageMediaURL       *string   `gorm:"size:500;column:message_media_url" json:"message_media_url,omitempty"`
	MessageCreatedAt      time.Time `gorm:"type:timestamptz;autoCreateTime;column:message_created_at" json:"message_created_at"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
