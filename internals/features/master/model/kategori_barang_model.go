package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KategoriBarangModel struct {
	KategoriBarangID        uuid.UUID `gorm:"column:kategori_barang_id;type:uuid;primaryKey" json:"kategori_barang_id"`
	KategoriBarangKode      string    `gorm:"column:kategori_barang_kode;size:20;unique;not null" json:"kategori_barang_kode"`
	KategoriBarangNama      string    `gorm:"column:kategori_barang_nama;size:100;not null" json:"kategori_barang_nama"`
	KategoriBarangCreatedAt time.Time `gorm:"column:kategori_barang_created_at;autoCreateTime" json:"kategori_barang_created_at"`
}

func (KategoriBarangModel) TableName() string {
	return "kategori_barang"
}

func (m *KategoriBarangModel) BeforeCreate(tx *gorm.DB) error {
	if m.KategoriBarangID == uuid.Nil {
		m.KategoriBarangID = uuid.New()
	}
	return nil
}
