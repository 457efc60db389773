package master

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"simaset_backend/internals/features/master/model"
)

type KategoriSeed struct {
	Kode string `json:"kode"`
	Nama string `json:"nama"`
}

type LokasiSeed struct {
	Nama       string  `json:"nama"`
	Gedung     *string `json:"gedung"`
	Keterangan *string `json:"keterangan"`
}

func SeedKategoriFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file kategori:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []KategoriSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.KategoriBarangModel
		if err := db.Where("kategori_barang_kode = ?", data.Kode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kategori '%s' sudah ada, dilewati.", data.Kode)
			continue
		}

		kategori := model.KategoriBarangModel{
			KategoriBarangKode: data.Kode,
			KategoriBarangNama: data.Nama,
		}
		if err := db.Create(&kategori).Error; err != nil {
			log.Printf("❌ Gagal insert kategori '%s': %v", data.Kode, err)
		} else {
			log.Printf("✅ Berhasil insert kategori '%s'", data.Kode)
		}
	}
}

func SeedLokasiFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file lokasi:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []LokasiSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.LokasiModel
		if err := db.Where("lokasi_nama = ?", data.Nama).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Lokasi '%s' sudah ada, dilewati.", data.Nama)
			continue
		}

		lokasi := model.LokasiModel{
			LokasiNama:       data.Nama,
			LokasiGedung:     data.Gedung,
			LokasiKeterangan: data.Keterangan,
		}
		if err := db.Create(&lokasi).Error; err != nil {
			log.Printf("❌ Gagal insert lokasi '%s': %v", data.Nama, err)
		} else {
			log.Printf("✅ Berhasil insert lokasi '%s'", data.Nama)
		}
	}
}
