package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/disposals/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func PenghapusanRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPenghapusanController(db)

	api := app.Group("/api/penghapusan", authMiddleware.AuthMiddleware(db))

	api.Post("/", ctrl.Create)
	api.Get("/", ctrl.GetAll)
	api.Get("/:id", ctrl.GetByID)
	api.Get("/:id/berita-acara", ctrl.GetBeritaAcaraProjection)

	// role per langkah diputuskan engine lewat tabel transisi
	api.Patch("/:id/status", ctrl.Transition)

	dokumen := api.Group("", authMiddleware.OnlyRoles(
		constants.RoleError(constants.RolePengurusBarang, "dokumen penghapusan"),
		constants.RolePengurusBarang,
	))
	dokumen.Post("/:id/dokumen", ctrl.UploadDokumen)
	dokumen.Delete("/:id/dokumen", ctrl.RevertDokumen)
}
