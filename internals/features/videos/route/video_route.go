package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoCtl "iflow_backend/internals/features/videos/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func VideoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := videoCtl.NewVideoController(db)

	r := api.Group("/videos")
	r.Get("/", authMw.Optional(), ctl.Feed)
	r.Post("/", authMw.Required(db), ctl.Upload)
	r.Post("/:videoId/like", authMw.Required(db), ctl.Like)
	r.Delete("/:videoId/like", authMw.Required(db), ctl.Unlike)
}
