// file: internals/features/templates/controller/template_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateDto "iflow_backend/internals/features/templates/dto"
	templateSvc "iflow_backend/internals/features/templates/service"
	helper "iflow_backend/internals/helpers"
)

type TemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /templates — seluruh template, bentuk map key→content plus detail baris.
func (ctl *TemplateController) List(c *fiber.Ctx) error {
	kv, rows, err := templateSvc.ListTemplates(c.Context(), ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch templates")
	}
	return helper.JsonOK(c, fiber.Map{
		"templates": kv,
		"details":   rows,
	})
}

// GET /templates/:key
func (ctl *TemplateController) Get(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))

	row, err := templateSvc.GetTemplate(c.Context(), ctl.DB, key)
	if err != nil {
		if errors.Is(err, templateSvc.ErrTemplateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch template")
	}
	return helper.JsonOK(c, fiber.Map{"template": row})
}

// PUT /templates/:key — admin only.
func (ctl *TemplateController) Update(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))

	var req templateDto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Content is required")
	}

	row, err := templateSvc.UpdateTemplate(c.Context(), ctl.DB, key, req.Content)
	if err != nil {
		if errors.Is(err, templateSvc.ErrTemplateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update template")
	}
	return helper.JsonOK(c, fiber.Map{"template": row})
}

// POST /templates/bulk-update — admin only.
func (ctl *TemplateController) BulkUpdate(c *fiber.Ctx) error {
	var req templateDto.BulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "updates must be a non-empty array of {key, content}")
	}

	rows, err := templateSvc.BulkUpdateTemplates(c.Context(), ctl.DB, req.Updates)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update templates")
	}
	return helper.JsonOK(c, fiber.Map{
		"message":   "Templates updated",
		"templates": rows,
	})
}
