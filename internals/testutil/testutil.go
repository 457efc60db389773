package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	disposalModel "simaset_backend/internals/features/assets/disposals/model"
	itemModel "simaset_backend/internals/features/assets/items/model"
	loanModel "simaset_backend/internals/features/assets/loans/model"
	procurementModel "simaset_backend/internals/features/assets/procurements/model"
	masterModel "simaset_backend/internals/features/master/model"
	userModel "simaset_backend/internals/features/users/model"
	"simaset_backend/internals/workflows"
)

// OpenTestDB membuka sqlite in-memory dengan skema lengkap. Tiap pemanggil
// mendapat database segar.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// satu koneksi supaya :memory: tidak terpecah antar koneksi pool
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&masterModel.KategoriBarangModel{},
		&masterModel.LokasiModel{},
		&itemModel.BarangModel{},
		&loanModel.PeminjamanModel{},
		&procurementModel.RencanaPengadaanModel{},
		&procurementModel.RencanaPengadaanDetailModel{},
		&disposalModel.PenghapusanModel{},
		&workflows.LogValidasiModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewActor membuat aktor dengan role tertentu tanpa menyentuh tabel users.
func NewActor(role string) workflows.Actor {
	return workflows.Actor{ID: uuid.New(), Role: role}
}

// SeedUser menyimpan user aktif dan mengembalikan aktornya.
func SeedUser(t *testing.T, db *gorm.DB, role string) workflows.Actor {
	t.Helper()

	u := userModel.UserModel{
		UserNIP:      uuid.NewString()[:18],
		UserName:     "Pegawai " + role,
		UserEmail:    uuid.NewString() + "@simaset.go.id",
		UserPassword: "rahasia",
		UserRole:     role,
		UserIsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return workflows.Actor{ID: u.UserID, Role: role}
}

// SeedBarang menyimpan barang dengan status tertentu.
func SeedBarang(t *testing.T, db *gorm.DB, status string) *itemModel.BarangModel {
	t.Helper()

	b := itemModel.BarangModel{
		BarangKode:         "BRG-" + uuid.NewString()[:8],
		BarangNama:         "Laptop Dinas",
		BarangKategoriID:   uuid.New(),
		BarangStatus:       status,
		BarangDiajukanOleh: uuid.New(),
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	return &b
}

// CountLogs menghitung baris ledger untuk satu entitas.
func CountLogs(t *testing.T, db *gorm.DB, kind workflows.EntityKind, id uuid.UUID) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&workflows.LogValidasiModel{}).
		Where("log_validasi_entity_kind = ? AND log_validasi_entity_id = ?", kind, id).
		Count(&n).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	return n
}

// LastLog mengambil baris ledger terbaru untuk satu entitas.
func LastLog(t *testing.T, db *gorm.DB, kind workflows.EntityKind, id uuid.UUID) *workflows.LogValidasiModel {
	t.Helper()

	var row workflows.LogValidasiModel
	if err := db.
		Where("log_validasi_entity_kind = ? AND log_validasi_entity_id = ?", kind, id).
		Order("log_validasi_created_at DESC").
		First(&row).Error; err != nil {
		t.Fatalf("last log: %v", err)
	}
	return &row
}
