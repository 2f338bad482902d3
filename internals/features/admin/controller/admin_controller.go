// file: internals/features/admin/controller/admin_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminSvc "iflow_backend/internals/features/admin/service"
	helper "iflow_backend/internals/helpers"
	"iflow_backend/internals/seeds"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /admin/stats
func (ctl *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := adminSvc.GetStats(c.Context(), ctl.DB)
	if err != nil {
		log.Println("[ERROR] gagal mengambil stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}
	return helper.JsonOK(c, fiber.Map{"stats": stats})
}

// POST /admin/test-data — isi database dengan data demo.
func (ctl *AdminController) TestData(c *fiber.Ctx) error {
	sum, err := seeds.TestData(c.Context(), ctl.DB)
	if err != nil {
		log.Println("[ERROR] gagal membuat test data:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create test data")
	}
	return helper.JsonOK(c, fiber.Map{
		"message": "Test data created",
		"summary": sum,
	})
}
