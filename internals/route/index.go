// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "iflow_backend/internals/features/admin/route"
	commentRoute "iflow_backend/internals/features/comments/route"
	eventRoute "iflow_backend/internals/features/events/route"
	hubRoute "iflow_backend/internals/features/hubs/route"
	listingRoute "iflow_backend/internals/features/marketplace/route"
	messageRoute "iflow_backend/internals/features/messages/route"
	postRoute "iflow_backend/internals/features/posts/route"
	templateRoute "iflow_backend/internals/features/templates/route"
	authRoute "iflow_backend/internals/features/users/auth/route"
	userRoute "iflow_backend/internals/features/users/user/route"
	videoRoute "iflow_backend/internals/features/videos/route"
)

// SetupRoutes mendaftarkan seluruh route aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	hubRoute.HubRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	postRoute.PostRoutes(api, db)
	listingRoute.MarketplaceRoutes(api, db)
	videoRoute.VideoRoutes(api, db)
	messageRoute.MessageRoutes(api, db)
	templateRoute.TemplateRoutes(api, db)
	adminRoute.AdminRoutes(api, db)

	// Paling akhir: pola generik /:itemType/:itemId/comments, jangan
	// sampai menangkap route lain.
	commentRoute.CommentRoutes(api, db)
}
