// file: internals/features/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Komentar hidup di empat tabel terpisah (per jenis item), semua dengan
// bentuk kolom yang sama: id, <item>_id, user_id, content, created_at.
// Endpoint generiknya memetakan itemType → tabel lewat whitelist di service.

type EventCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index;column:event_id" json:"event_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
}

func (EventCommentModel) TableName() string { return "event_comments" }

type PostCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index;column:post_id" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
}

func (PostCommentModel) TableName() string { return "post_comments" }

type VideoCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index;column:video_id" json:"video_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
}

func (VideoCommentModel) TableName() string { return "video_comments" }

type ListingCommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index;column:listing_id" json:"listing_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:created_at" json:"created_at"`
}

func (ListingCommentModel) TableName() string { return "listing_comments" }

func setID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *EventCommentModel) BeforeCreate(tx *gorm.DB) error   { setID(&m.ID); return nil }
func (m *PostCommentModel) BeforeCreate(tx *gorm.DB) error    { setID(&m.ID); return nil }
func (m *VideoCommentModel) BeforeCreate(tx *gorm.DB) error   { setID(&m.ID); return nil }
func (m *ListingCommentModel) BeforeCreate(tx *gorm.DB) error { setID(&m.ID); return nil }
