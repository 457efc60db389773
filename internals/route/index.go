package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	disposalRoute "simaset_backend/internals/features/assets/disposals/route"
	itemRoute "simaset_backend/internals/features/assets/items/route"
	loanRoute "simaset_backend/internals/features/assets/loans/route"
	logRoute "simaset_backend/internals/features/assets/logs/route"
	procurementRoute "simaset_backend/internals/features/assets/procurements/route"
	masterRoute "simaset_backend/internals/features/master/route"
	userRoute "simaset_backend/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up MasterRoutes...")
	masterRoute.MasterRoutes(app, db)

	log.Println("[INFO] Setting up BarangRoutes...")
	itemRoute.BarangRoutes(app, db)

	log.Println("[INFO] Setting up PeminjamanRoutes...")
	loanRoute.PeminjamanRoutes(app, db)

	log.Println("[INFO] Setting up RencanaPengadaanRoutes...")
	procurementRoute.RencanaPengadaanRoutes(app, db)

	log.Println("[INFO] Setting up PenghapusanRoutes...")
	disposalRoute.PenghapusanRoutes(app, db)

	log.Println("[INFO] Setting up LogValidasiRoutes...")
	logRoute.LogValidasiRoutes(app, db)
}
