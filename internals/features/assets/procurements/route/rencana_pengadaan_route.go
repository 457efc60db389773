package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/procurements/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func RencanaPengadaanRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewRencanaPengadaanController(db)

	api := app.Group("/api/rencana-pengadaan", authMiddleware.AuthMiddleware(db))

	api.Post("/", ctrl.Create)
	api.Get("/saya", ctrl.GetMine)
	api.Get("/", ctrl.GetAll)
	api.Get("/:id", ctrl.GetByID)

	// role per langkah diputuskan engine lewat tabel transisi
	api.Patch("/:id/status", ctrl.Transition)

	api.Post("/:id/validasi-detail",
		authMiddleware.OnlyRoles(constants.RoleError(constants.RolePenataUsahaBarang, "validasi barang usulan"), constants.RolePenataUsahaBarang),
		ctrl.ValidateDetails,
	)

	api.Delete("/:id", ctrl.Delete)
}
