package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postCtl "iflow_backend/internals/features/posts/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func PostRoutes(api fiber.Router, db *gorm.DB) {
	ctl := postCtl.NewPostController(db)

	r := api.Group("/posts")
	r.Get("/", authMw.Optional(), ctl.Feed)
	r.Post("/", authMw.Required(db), ctl.Create)
	r.Post("/:postId/like", authMw.Required(db), ctl.React)
}
