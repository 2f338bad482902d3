package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageCtl "iflow_backend/internals/features/messages/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func MessageRoutes(api fiber.Router, db *gorm.DB) {
	ctl := messageCtl.NewMessageController(db)

	r := api.Group("/messages", authMw.Required(db))
	r.Get("/conversations", ctl.Conversations)
	r.Post("/conversations", ctl.Open)
	r.Get("/conversations/:conversationId", ctl.Messages)
	r.Post("/conversations/:conversationId/messages", ctl.Send)
}
