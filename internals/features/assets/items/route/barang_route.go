package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/items/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func BarangRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewBarangController(db)

	api := app.Group("/api/barang", authMiddleware.AuthMiddleware(db))

	api.Get("/", ctrl.GetAll)
	api.Get("/menunggu-validasi",
		authMiddleware.OnlyRoles(constants.RoleError(constants.RolePengurusBarang, "antrean validasi barang"), constants.RolePengurusBarang),
		ctrl.GetPendingValidation,
	)
	api.Get("/:id", ctrl.GetByID)

	// semua role boleh mengusulkan barang; Admin bypass langsung Tersedia
	api.Post("/", ctrl.Create)

	api.Post("/:id/validasi",
		authMiddleware.OnlyRoles(constants.RoleError(constants.RolePengurusBarang, "validasi barang"), constants.RolePengurusBarang),
		ctrl.ValidateBarang,
	)

	admin := api.Group("", authMiddleware.OnlyRoles(constants.RoleError(constants.RoleAdmin, "pengelolaan barang"), constants.RoleAdmin))
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
