package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "iflow_backend/internals/features/users/auth/controller"
	userCtl "iflow_backend/internals/features/users/user/controller"
	authMw "iflow_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)
	auth := authCtl.NewAuthController(db)

	r := api.Group("/users")
	// /me harus terdaftar sebelum /:userId supaya tidak ketangkap param
	r.Patch("/me", authMw.Required(db), ctl.UpdateMe)
	r.Get("/:userId", ctl.GetProfile)
	r.Put("/:userId", authMw.Required(db), ctl.UpdateByID)
	r.Put("/:userId/password", authMw.Required(db), auth.ChangePassword)
}
