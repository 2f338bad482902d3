package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	listingCtl "iflow_backend/internals/features/marketplace/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func MarketplaceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := listingCtl.NewListingController(db)

	r := api.Group("/marketplace")
	r.Get("/", authMw.Optional(), ctl.List)
	r.Post("/", authMw.Required(db), ctl.Create)
}
