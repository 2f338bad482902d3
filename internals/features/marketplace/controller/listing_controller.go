// file: internals/features/marketplace/controller/listing_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	listingDto "iflow_backend/internals/features/marketplace/dto"
	listingSvc "iflow_backend/internals/features/marketplace/service"
	helper "iflow_backend/internals/helpers"
)

type ListingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewListingController(db *gorm.DB) *ListingController {
	return &ListingController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /marketplace?hubId=&propTag=&status=&limit=
func (ctl *ListingController) List(c *fiber.Ctx) error {
	filter := listingSvc.ListingFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Limit:  c.QueryInt("limit"),
	}

	if raw := strings.TrimSpace(c.Query("hubId")); raw != "" {
		hubID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hubId")
		}
		filter.HubID = &hubID
	}
	if raw := strings.TrimSpace(c.Query("propTag")); raw != "" {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid propTag")
		}
		filter.PropTag = &tagID
	}

	listings, err := listingSvc.ListListings(c.Context(), ctl.DB, filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch listings")
	}
	return helper.JsonOK(c, fiber.Map{"listings": listings})
}

// POST /marketplace
func (ctl *ListingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req listingDto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	listing, err := listingSvc.CreateListing(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create listing")
	}
	return helper.JsonCreated(c, fiber.Map{"listing": listing})
}
