package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hubCtl "iflow_backend/internals/features/hubs/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func HubRoutes(api fiber.Router, db *gorm.DB) {
	ctl := hubCtl.NewHubController(db)

	r := api.Group("/hubs")
	r.Get("/", authMw.Optional(), ctl.List)
	r.Post("/", authMw.Required(db), ctl.Create)
	r.Get("/:hubId", authMw.Optional(), ctl.Get)
	r.Post("/:hubId/join", authMw.Required(db), ctl.Join)
	r.Get("/:hubId/posts", authMw.Optional(), ctl.Posts)
	r.Post("/:hubId/posts", authMw.Required(db), ctl.CreatePost)
}
