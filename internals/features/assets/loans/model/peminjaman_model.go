package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PeminjamanModel: satu permohonan pinjam atas satu barang.
// Barang baru berstatus Dipinjam saat permohonan divalidasi Pengurus Barang,
// bukan saat diajukan.
type PeminjamanModel struct {
	PeminjamanID                   uuid.UUID      `gorm:"column:peminjaman_id;type:uuid;primaryKey" json:"peminjaman_id"`
	PeminjamanBarangID             uuid.UUID      `gorm:"column:peminjaman_barang_id;type:uuid;not null;index" json:"peminjaman_barang_id"`
	PeminjamanUserID               uuid.UUID      `gorm:"column:peminjaman_user_id;type:uuid;not null;index" json:"peminjaman_user_id"`
	PeminjamanTanggalMulai         datatypes.Date `gorm:"column:peminjaman_tanggal_mulai;not null" json:"peminjaman_tanggal_mulai"`
	PeminjamanTanggalKembali       datatypes.Date `gorm:"column:peminjaman_tanggal_kembali;not null" json:"peminjaman_tanggal_kembali"`
	PeminjamanTanggalAktualKembali *time.Time     `gorm:"column:peminjaman_tanggal_aktual_kembali" json:"peminjaman_tanggal_aktual_kembali,omitempty"`
	PeminjamanKeperluan            string         `gorm:"column:peminjaman_keperluan;type:text;not null" json:"peminjaman_keperluan"`
	PeminjamanStatus               string         `gorm:"column:peminjaman_status;type:varchar(40);not null;index" json:"peminjaman_status"`
	PeminjamanCatatanPenolakan     *string        `gorm:"column:peminjaman_catatan_penolakan;type:text" json:"peminjaman_catatan_penolakan,omitempty"`
	// Data pihak kedua di surat perjanjian fisik (opsional)
	PeminjamanNamaPihakKedua    *string   `gorm:"column:peminjaman_nama_pihak_kedua;size:100" json:"peminjaman_nama_pihak_kedua,omitempty"`
	PeminjamanJabatanPihakKedua *string   `gorm:"column:peminjaman_jabatan_pihak_kedua;size:100" json:"peminjaman_jabatan_pihak_kedua,omitempty"`
	PeminjamanCreatedAt         time.Time `gorm:"column:peminjaman_created_at;autoCreateTime" json:"peminjaman_created_at"`
	PeminjamanUpdatedAt         time.Time `gorm:"column:peminjaman_updated_at;autoUpdateTime" json:"peminjaman_updated_at"`
}

func (PeminjamanModel) TableName() string {
	return "peminjaman"
}

func (m *PeminjamanModel) BeforeCreate(tx *gorm.DB) error {
	if m.PeminjamanID == uuid.Nil {
		m.PeminjamanID = uuid.New()
	}
	return nil
}
