// file: internals/features/events/model/event_instructor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventInstructorModel: pengajar/pemandu yang ditautkan ke sebuah event.
type EventInstructorModel struct {
	EventInstructorID        uuid.UUID `gorm:"type:uuid;primaryKey;column:event_instructor_id" json:"event_instructor_id"`
	EventInstructorEventID   uuid.UUID `gorm:"type:uuid;not null;index;column:event_instructor_event_id" json:"event_instructor_event_id"`
	EventInstructorUserID    uuid.UUID `gorm:"type:uuid;not null;column:event_instructor_user_id" json:"event_instructor_user_id"`
	EventInstructorRole      *string   `gorm:"size:50;column:event_instructor_role" json:"event_instructor_role,omitempty"`
	EventInstructorCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:event_instructor_created_at" json:"event_instructor_created_at"`
}

func (EventInstructorModel) TableName() string { return "event_instructors" }

func (m *EventInstructorModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventInstructorID == uuid.Nil {
		m.EventInstructorID = uuid.New()
	}
	return nil
}
