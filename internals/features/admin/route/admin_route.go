package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminCtl "iflow_backend/internals/features/admin/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := adminCtl.NewAdminController(db)

	r := api.Group("/admin", authMw.Required(db), authMw.AdminOnly(db))
	r.Get("/stats", ctl.Stats)
	r.Post("/test-data", ctl.TestData)
}
