package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/logs/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func LogValidasiRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewLogValidasiController(db)

	api := app.Group("/api/log-validasi",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleError(constants.RoleAdmin+" / "+constants.RolePenataUsahaBarang, "log validasi"),
			constants.AuditReaderRoles...,
		),
	)

	api.Get("/", ctrl.GetAll)
	api.Get("/:kind/:id", ctrl.GetByEntity)
}
