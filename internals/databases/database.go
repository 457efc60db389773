package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	disposalModel "simaset_backend/internals/features/assets/disposals/model"
	itemModel "simaset_backend/internals/features/assets/items/model"
	loanModel "simaset_backend/internals/features/assets/loans/model"
	procurementModel "simaset_backend/internals/features/assets/procurements/model"
	masterModel "simaset_backend/internals/features/master/model"
	userModel "simaset_backend/internals/features/users/model"
	"simaset_backend/internals/workflows"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan
	// PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=simaset&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// RunMigrations menyamakan skema dengan model. Dipanggil saat boot; aman
// diulang karena AutoMigrate idempoten.
func RunMigrations() {
	if err := DB.AutoMigrate(
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
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// ping ringan supaya pool keisi dan siap sebelum request pertama
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
