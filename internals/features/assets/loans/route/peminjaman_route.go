package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/loans/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func PeminjamanRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPeminjamanController(db)

	api := app.Group("/api/peminjaman", authMiddleware.AuthMiddleware(db))

	api.Post("/", ctrl.Create)
	api.Get("/saya", ctrl.GetMine)
	api.Get("/",
		authMiddleware.OnlyRoles(constants.RoleError(constants.RolePengurusBarang, "antrean peminjaman"), constants.RolePengurusBarang, constants.RoleAdmin),
		ctrl.GetAll,
	)
	api.Get("/:id", ctrl.GetByID)
	api.Get("/:id/surat", ctrl.GetSuratProjection)

	// gating role final dilakukan engine lewat tabel transisi
	api.Patch("/:id/status",
		authMiddleware.OnlyRoles(constants.RoleError(constants.RolePengurusBarang, "proses peminjaman"), constants.RolePengurusBarang),
		ctrl.Transition,
	)

	api.Delete("/:id", ctrl.Delete)
}
