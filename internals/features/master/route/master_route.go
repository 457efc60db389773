package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/master/controller"
	authMiddleware "simaset_backend/internals/middlewares/auth"
)

func MasterRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewMasterController(db)

	api := app.Group("/api/master", authMiddleware.AuthMiddleware(db))

	// semua role boleh baca master data
	api.Get("/kategori", ctrl.GetAllKategori)
	api.Get("/lokasi", ctrl.GetAllLokasi)

	manage := api.Group("", authMiddleware.OnlyRoles(
		"❌ Hanya Admin atau Pengurus Barang yang boleh mengelola master data.",
		constants.MasterDataRoles...,
	))
	manage.Post("/kategori", ctrl.CreateKategori)
	manage.Delete("/kategori/:id", ctrl.DeleteKategori)
	manage.Post("/lokasi", ctrl.CreateLokasi)
	manage.Put("/lokasi/:id", ctrl.UpdateLokasi)
}
