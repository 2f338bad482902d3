package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventCtl "iflow_backend/internals/features/events/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctl := eventCtl.NewEventController(db)

	r := api.Group("/events")
	r.Get("/", authMw.Optional(), ctl.List)
	r.Post("/", authMw.Required(db), ctl.Create)
	r.Put("/:eventId", authMw.Required(db), ctl.Update)
	r.Delete("/:eventId", authMw.Required(db), ctl.Delete)
	r.Post("/:eventId/rsvp", authMw.Required(db), ctl.SubmitRSVP)
	r.Delete("/:eventId/rsvp", authMw.Required(db), ctl.ClearRSVP)
}
