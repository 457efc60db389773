package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/users/controller"
	"simaset_backend/internals/middlewares"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctrl.Me)
	protected.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.OnlyRoles(constants.RoleError(constants.RoleAdmin, "pendaftaran pegawai"), constants.RoleAdmin),
		ctrl.Register,
	)
}
