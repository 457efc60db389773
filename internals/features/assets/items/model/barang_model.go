package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BarangModel merepresentasikan satu aset fisik.
// barang_status selalu salah satu dari himpunan tertutup di package workflows.
type BarangModel struct {
	BarangID               uuid.UUID       `gorm:"column:barang_id;type:uuid;primaryKey" json:"barang_id"`
	BarangKode             string          `gorm:"column:barang_kode;size:50;unique;not null" json:"barang_kode"`
	BarangNama             string          `gorm:"column:barang_nama;size:150;not null" json:"barang_nama"`
	BarangKategoriID       uuid.UUID       `gorm:"column:barang_kategori_id;type:uuid;not null;index" json:"barang_kategori_id"`
	BarangLokasiID         *uuid.UUID      `gorm:"column:barang_lokasi_id;type:uuid;index" json:"barang_lokasi_id,omitempty"`
	BarangSpesifikasi      string          `gorm:"column:barang_spesifikasi;type:text" json:"barang_spesifikasi"`
	BarangTanggalPerolehan *datatypes.Date `gorm:"column:barang_tanggal_perolehan" json:"barang_tanggal_perolehan,omitempty"`
	BarangNilaiPerolehan   int64           `gorm:"column:barang_nilai_perolehan;not null;default:0" json:"barang_nilai_perolehan"`
	BarangSumberDana       *string         `gorm:"column:barang_sumber_dana;size:100" json:"barang_sumber_dana,omitempty"`
	BarangStatus           string          `gorm:"column:barang_status;type:varchar(30);not null;index" json:"barang_status"`
	BarangFotoURL          *string         `gorm:"column:barang_foto_url;type:text" json:"barang_foto_url,omitempty"`
	BarangQRCodeURL        *string         `gorm:"column:barang_qrcode_url;type:text" json:"barang_qrcode_url,omitempty"`
	BarangPemegangID       *uuid.UUID      `gorm:"column:barang_pemegang_id;type:uuid" json:"barang_pemegang_id,omitempty"`
	BarangDiajukanOleh     uuid.UUID       `gorm:"column:barang_diajukan_oleh;type:uuid;not null" json:"barang_diajukan_oleh"`
	BarangCreatedAt        time.Time       `gorm:"column:barang_created_at;autoCreateTime" json:"barang_created_at"`
	BarangUpdatedAt        time.Time       `gorm:"column:barang_updated_at;autoUpdateTime" json:"barang_updated_at"`
}

func (BarangModel) TableName() string {
	return "barang"
}

func (m *BarangModel) BeforeCreate(tx *gorm.DB) error {
	if m.BarangID == uuid.Nil {
		m.BarangID = uuid.New()
	}
	return nil
}
