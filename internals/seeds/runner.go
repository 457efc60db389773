package seeds

import (
	"gorm.io/gorm"

	master "simaset_backend/internals/seeds/master"
	users "simaset_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User: satu akun per role organisasi
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Master data
	master.SeedKategoriFromJSON(db, "internals/seeds/master/data_kategori.json")
	master.SeedLokasiFromJSON(db, "internals/seeds/master/data_lokasi.json")
}
