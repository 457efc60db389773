package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LokasiModel: ruangan / tempat penempatan barang.
type LokasiModel struct {
	LokasiID         uuid.UUID `gorm:"column:lokasi_id;type:uuid;primaryKey" json:"lokasi_id"`
	LokasiNama       string    `gorm:"column:lokasi_nama;size:100;not null" json:"lokasi_nama"`
	LokasiGedung     *string   `gorm:"column:lokasi_gedung;size:100" json:"lokasi_gedung,omitempty"`
	LokasiKeterangan *string   `gorm:"column:lokasi_keterangan;type:text" json:"lokasi_keterangan,omitempty"`
	LokasiCreatedAt  time.Time `gorm:"column:lokasi_created_at;autoCreateTime" json:"lokasi_created_at"`
}

func (LokasiModel) TableName() string {
	return "lokasi"
}

func (m *LokasiModel) BeforeCreate(tx *gorm.DB) error {
	if m.LokasiID == uuid.Nil {
		m.LokasiID = uuid.New()
	}
	return nil
}
