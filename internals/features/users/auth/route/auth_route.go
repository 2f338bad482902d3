package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "iflow_backend/internals/features/users/auth/controller"
	"iflow_backend/internals/middlewares"
	authMw "iflow_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	r := api.Group("/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Get("/verify", authMw.Required(db), ctl.Verify)
	r.Post("/logout", authMw.Required(db), ctl.Logout)
}
