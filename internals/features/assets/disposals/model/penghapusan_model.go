package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PenghapusanModel: usulan penghapusan (write-off) satu barang.
// Selesai hanya dicapai setelah dokumen penghapusan bertanda tangan diunggah;
// pembatalan dokumen mengembalikan status usulan dan barang sekaligus.
type PenghapusanModel struct {
	PenghapusanID               uuid.UUID `gorm:"column:penghapusan_id;type:uuid;primaryKey" json:"penghapusan_id"`
	PenghapusanBarangID         uuid.UUID `gorm:"column:penghapusan_barang_id;type:uuid;not null;index" json:"penghapusan_barang_id"`
	PenghapusanUserID           uuid.UUID `gorm:"column:penghapusan_user_id;type:uuid;not null;index" json:"penghapusan_user_id"`
	PenghapusanAlasan           string    `gorm:"column:penghapusan_alasan;type:text;not null" json:"penghapusan_alasan"`
	PenghapusanFotoBuktiURL     *string   `gorm:"column:penghapusan_foto_bukti_url;type:text" json:"penghapusan_foto_bukti_url,omitempty"`
	PenghapusanDokumenURL       *string   `gorm:"column:penghapusan_dokumen_url;type:text" json:"penghapusan_dokumen_url,omitempty"`
	PenghapusanStatus           string    `gorm:"column:penghapusan_status;type:varchar(40);not null;index" json:"penghapusan_status"`
	PenghapusanCatatanPenolakan *string   `gorm:"column:penghapusan_catatan_penolakan;type:text" json:"penghapusan_catatan_penolakan,omitempty"`
	PenghapusanCreatedAt        time.Time `gorm:"column:penghapusan_created_at;autoCreateTime" json:"penghapusan_created_at"`
	PenghapusanUpdatedAt        time.Time `gorm:"column:penghapusan_updated_at;autoUpdateTime" json:"penghapusan_updated_at"`
}

func (PenghapusanModel) TableName() string {
	return "penghapusan"
}

func (m *PenghapusanModel) BeforeCreate(tx *gorm.DB) error {
	if m.PenghapusanID == uuid.Nil {
		m.PenghapusanID = uuid.New()
	}
	return nil
}
