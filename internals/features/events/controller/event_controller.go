// file: internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDto "iflow_backend/internals/features/events/dto"
	eventSvc "iflow_backend/internals/features/events/service"
	helper "iflow_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /events?hubId=&startDate=&endDate=
func (ctl *EventController) List(c *fiber.Ctx) error {
	filter := eventSvc.ListFilter{}

	if raw := strings.TrimSpace(c.Query("hubId")); raw != "" {
		hubID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hubId")
		}
		filter.HubID = &hubID
	}
	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate")
		}
		filter.StartDate = &t
	}
	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate")
		}
		filter.EndDate = &t
	}

	events, err := eventSvc.ListEvents(c.Context(), ctl.DB, filter, helper.OptionalUserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonOK(c, fiber.Map{"events": events})
}

// POST /events
func (ctl *EventController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req eventDto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ev, err := eventSvc.CreateEvent(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return ctl.renderEventError(c, err, "Failed to create event")
	}
	return helper.JsonCreated(c, fiber.Map{"event": ev})
}

// PUT /events/:eventId
func (ctl *EventController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("eventId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req eventDto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ev, err := eventSvc.UpdateEvent(c.Context(), ctl.DB, eventID, userID, req)
	if err != nil {
		return ctl.renderEventError(c, err, "Failed to update event")
	}
	return helper.JsonOK(c, fiber.Map{"event": ev})
}

// DELETE /events/:eventId
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("eventId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	if err := eventSvc.DeleteEvent(c.Context(), ctl.DB, eventID, userID); err != nil {
		return ctl.renderEventError(c, err, "Failed to delete event")
	}
	return helper.JsonMessage(c, "Event deleted successfully")
}

// POST /events/:eventId/rsvp
func (ctl *EventController) SubmitRSVP(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("eventId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req eventDto.RSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := eventSvc.SubmitRSVP(c.Context(), ctl.DB, eventID, userID, req.Status); err != nil {
		return ctl.renderEventError(c, err, "Failed to update RSVP")
	}
	return helper.JsonMessage(c, "RSVP updated successfully")
}

// DELETE /events/:eventId/rsvp
func (ctl *EventController) ClearRSVP(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("eventId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	if err := eventSvc.ClearRSVP(c.Context(), ctl.DB, eventID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove RSVP")
	}
	return helper.JsonMessage(c, "RSVP removed successfully")
}

func (ctl *EventController) renderEventError(c *fiber.Ctx, err error, fallback string) error {
	var conflict *eventSvc.ConflictError
	switch {
	case errors.As(err, &conflict):
		return helper.JsonErrorWithDetails(c, fiber.StatusConflict, conflict.Error(), fiber.Map{
			"conflicts": conflict.Conflicts,
		})
	case errors.Is(err, eventSvc.ErrEventNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	case errors.Is(err, eventSvc.ErrNotOwner):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, eventSvc.ErrInvalidStatus), errors.Is(err, eventSvc.ErrInvalidWindow):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

// parseDate menerima RFC3339 atau tanggal polos YYYY-MM-DD.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
