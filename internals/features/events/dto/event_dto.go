// file: internals/features/events/dto/event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "iflow_backend/internals/features/events/model"
)

// CreateEventRequest: body POST /events (key camelCase, mengikuti frontend).
type CreateEventRequest struct {
	HubID        *uuid.UUID `json:"hubId"`
	Title        string     `json:"title" validate:"required,max=255"`
	Description  *string    `json:"description" validate:"omitempty,max=5000"`
	Location     *string    `json:"location" validate:"omitempty,max=255"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	StartTime    time.Time  `json:"startTime" validate:"required"`
	EndTime      time.Time  `json:"endTime" validate:"required"`
	IsFireEvent  bool       `json:"isFireEvent"`
	MaxAttendees *int       `json:"maxAttendees" validate:"omitempty,min=1"`
}

// UpdateEventRequest: body PUT /events/:eventId (full replacement).
type UpdateEventRequest struct {
	HubID        *uuid.UUID `json:"hubId"`
	Title        string     `json:"title" validate:"required,max=255"`
	Description  *string    `json:"description" validate:"omitempty,max=5000"`
	Location     *string    `json:"location" validate:"omitempty,max=255"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	StartTime    time.Time  `json:"startTime" validate:"required"`
	EndTime      time.Time  `json:"endTime" validate:"required"`
	IsFireEvent  bool       `json:"isFireEvent"`
	MaxAttendees *int       `json:"maxAttendees" validate:"omitempty,min=1"`
}

// RSVPRequest: body POST /events/:eventId/rsvp.
type RSVPRequest struct {
	Status string `json:"status" validate:"required"`
}

// InstructorItem: satu pengajar pada anotasi daftar event.
type InstructorItem struct {
	UserID      uuid.UUID `json:"userId"`
	Role        *string   `json:"role,omitempty"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

// EventResponse: baris event + anotasi agregat untuk GET /events.
type EventResponse struct {
	model.EventModel
	HubName     *string          `json:"hub_name,omitempty"`
	Instructors []InstructorItem `json:"instructors"`
	GoingCount  int64            `json:"going_count"`
	MyRSVP      *string          `json:"my_rsvp,omitempty"`
}
