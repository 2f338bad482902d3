package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateCtl "iflow_backend/internals/features/templates/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func TemplateRoutes(api fiber.Router, db *gorm.DB) {
	ctl := templateCtl.NewTemplateController(db)

	r := api.Group("/templates")
	r.Get("/", ctl.List)

	// Tulis hanya untuk admin; bulk-update didaftarkan sebelum :key
	// supaya tidak tertangkap route param.
	r.Post("/bulk-update", authMw.Required(db), authMw.AdminOnly(db), ctl.BulkUpdate)
	r.Get("/:key", ctl.Get)
	r.Put("/:key", authMw.Required(db), authMw.AdminOnly(db), ctl.Update)
}
