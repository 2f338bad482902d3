// file: internals/features/events/model/event_rsvp_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RSVPStatusGoing      = "going"
	RSVPStatusInterested = "interested"
	RSVPStatusNotGoing   = "not_going"
)

// EventRSVPModel: respons satu user untuk satu event.
// Pasangan (event, user) unik; submit ulang meng-overwrite status.
type EventRSVPModel struct {
	EventRSVPID        uuid.UUID `gorm:"type:uuid;primaryKey;column:event_rsvp_id" json:"event_rsvp_id"`
	EventRSVPEventID   uuid.UUID `gorm:"type:uuid;not null;column:event_rsvp_event_id;uniqueIndex:uq_event_rsvps_event_user" json:"event_rsvp_event_id"`
	EventRSVPUserID    uuid.UUID `gorm:"type:uuid;not null;column:event_rsvp_user_id;uniqueIndex:uq_event_rsvps_event_user" json:"event_rsvp_user_id"`
	EventRSVPStatus    string    `gorm:"type:varchar(20);not null;column:event_rsvp_status" json:"event_rsvp_status"`
	EventRSVPCreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;column:event_rsvp_created_at" json:"event_rsvp_created_at"`
	EventRSVPUpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime;column:event_rsvp_updated_at" json:"event_rsvp_updated_at"`
}

func (EventRSVPModel) TableName() string { return "event_rsvps" }

func (m *EventRSVPModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventRSVPID == uuid.Nil {
		m.EventRSVPID = uuid.New()
	}
	return nil
}

// ValidRSVPStatus memvalidasi nilai status dari request.
func ValidRSVPStatus(s string) bool {
	switch s {
	case RSVPStatusGoing, RSVPStatusInterested, RSVPStatusNotGoing:
		return true
	}
	return false
}
