// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventStatusScheduled = "scheduled"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// EventModel merepresentasikan tabel events.
// Event boleh tanpa hub (acara personal); hanya event ber-hub yang
// ikut deteksi konflik jadwal.
type EventModel struct {
	EventID           uuid.UUID  `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`
	EventHubID        *uuid.UUID `gorm:"type:uuid;index;column:event_hub_id" json:"event_hub_id,omitempty"`
	EventCreatedBy    uuid.UUID  `gorm:"type:uuid;not null;index;column:event_created_by" json:"event_created_by"`
	EventTitle        string     `gorm:"size:255;not null;column:event_title" json:"event_title"`
	EventDescription  *string    `gorm:"type:text;column:event_description" json:"event_description,omitempty"`
	EventLocation     *string    `gorm:"size:255;column:event_location" json:"event_location,omitempty"`
	EventLatitude     *float64   `gorm:"column:event_latitude" json:"event_latitude,omitempty"`
	EventLongitude    *float64   `gorm:"column:event_longitude" json:"event_longitude,omitempty"`
	EventStartTime    time.Time  `gorm:"type:timestamptz;not null;index;column:event_start_time" json:"event_start_time"`
	EventEndTime      time.Time  `gorm:"type:timestamptz;not null;column:event_end_time" json:"event_end_time"`
	EventIsFireEvent  bool       `gorm:"not null;default:false;column:event_is_fire_event" json:"event_is_fire_event"`
	EventMaxAttendees *int       `gorm:"column:event_max_attendees" json:"event_max_attendees,omitempty"`
	EventStatus       string     `gorm:"type:varchar(20);not null;default:'scheduled';column:event_status" json:"event_status"`
	EventCreatedAt    time.Time  `gorm:"type:timestamptz;autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt    time.Time  `gorm:"type:timestamptz;autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	if m.EventStatus == "" {
		m.EventStatus = EventStatusScheduled
	}
	return nil
}
