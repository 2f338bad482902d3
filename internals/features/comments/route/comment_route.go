package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentCtl "iflow_backend/internals/features/comments/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

// CommentRoutes nempel di root /api karena path-nya generik per itemType
// (/events/:id/comments, /posts/:id/comments, dst).
func CommentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := commentCtl.NewCommentController(db)

	api.Get("/:itemType/:itemId/comments", ctl.List)
	api.Post("/:itemType/:itemId/comments", authMw.Required(db), ctl.Create)
	api.Post("/comments/:commentId/like", authMw.Required(db), ctl.Like)
	api.Delete("/comments/:commentId", authMw.Required(db), ctl.Delete)
}
