// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iflow_backend/internals/features/users/user/dto"
	model "iflow_backend/internals/features/users/user/model"
	helper "iflow_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /users/:userId — profil publik
func (ctl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "id = ? AND is_active = true", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var badges []model.VerificationBadgeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("verification_badge_user_id = ? AND verification_badge_is_active = true", userID).
		Find(&badges).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var links []model.UserLinkModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_link_user_id = ?", userID).
		Find(&links).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, fiber.Map{"user": dto.ToProfileResponse(&user, badges, links)})
}

// PATCH /users/me — update profil sendiri (partial)
func (ctl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.applyProfileUpdates(c, userID, req.ToUpdates())
}

// PUT /users/:userId — update profil by id (hanya milik sendiri)
func (ctl *UserController) UpdateByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if targetID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only update your own profile")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return ctl.applyProfileUpdates(c, userID, req.ToUpdates())
}

func (ctl *UserController) applyProfileUpdates(c *fiber.Ctx, userID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.Context()).
			Model(&model.UserModel{}).
			Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonOK(c, fiber.Map{"user": user})
}
