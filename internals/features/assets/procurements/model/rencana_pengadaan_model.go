package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RencanaPengadaanModel: header usulan pengadaan barang baru.
type RencanaPengadaanModel struct {
	RencanaPengadaanID               uuid.UUID `gorm:"column:rencana_pengadaan_id;type:uuid;primaryKey" json:"rencana_pengadaan_id"`
	RencanaPengadaanNomor            string    `gorm:"column:rencana_pengadaan_nomor;size:30;unique;not null" json:"rencana_pengadaan_nomor"`
	RencanaPengadaanUserID           uuid.UUID `gorm:"column:rencana_pengadaan_user_id;type:uuid;not null;index" json:"rencana_pengadaan_user_id"`
	RencanaPengadaanKeterangan       string    `gorm:"column:rencana_pengadaan_keterangan;type:text" json:"rencana_pengadaan_keterangan"`
	RencanaPengadaanStatus           string    `gorm:"column:rencana_pengadaan_status;type:varchar(40);not null;index" json:"rencana_pengadaan_status"`
	RencanaPengadaanCatatanPenolakan *string   `gorm:"column:rencana_pengadaan_catatan_penolakan;type:text" json:"rencana_pengadaan_catatan_penolakan,omitempty"`
	RencanaPengadaanCreatedAt        time.Time `gorm:"column:rencana_pengadaan_created_at;autoCreateTime" json:"rencana_pengadaan_created_at"`
	RencanaPengadaanUpdatedAt        time.Time `gorm:"column:rencana_pengadaan_updated_at;autoUpdateTime" json:"rencana_pengadaan_updated_at"`

	Details []RencanaPengadaanDetailModel `gorm:"foreignKey:RencanaPengadaanDetailHeaderID;references:RencanaPengadaanID" json:"details,omitempty"`
}

func (RencanaPengadaanModel) TableName() string {
	return "rencana_pengadaan"
}

func (m *RencanaPengadaanModel) BeforeCreate(tx *gorm.DB) error {
	if m.RencanaPengadaanID == uuid.Nil {
		m.RencanaPengadaanID = uuid.New()
	}
	return nil
}

// RencanaPengadaanDetailModel: satu baris barang yang diusulkan.
// disetujui hanya boleh diubah pada langkah validasi Penata Usaha Barang.
type RencanaPengadaanDetailModel struct {
	RencanaPengadaanDetailID          uuid.UUID `gorm:"column:rencana_pengadaan_detail_id;type:uuid;primaryKey" json:"rencana_pengadaan_detail_id"`
	RencanaPengadaanDetailHeaderID    uuid.UUID `gorm:"column:rencana_pengadaan_detail_header_id;type:uuid;not null;index" json:"rencana_pengadaan_detail_header_id"`
	RencanaPengadaanDetailNamaBarang  string    `gorm:"column:rencana_pengadaan_detail_nama_barang;size:150;not null" json:"rencana_pengadaan_detail_nama_barang"`
	RencanaPengadaanDetailJumlah      int       `gorm:"column:rencana_pengadaan_detail_jumlah;not null" json:"rencana_pengadaan_detail_jumlah"`
	RencanaPengadaanDetailSatuan      string    `gorm:"column:rencana_pengadaan_detail_satuan;size:30;not null" json:"rencana_pengadaan_detail_satuan"`
	RencanaPengadaanDetailHargaSatuan int64     `gorm:"column:rencana_pengadaan_detail_harga_satuan;not null" json:"rencana_pengadaan_detail_harga_satuan"`
	RencanaPengadaanDetailSpesifikasi string    `gorm:"column:rencana_pengadaan_detail_spesifikasi;type:text" json:"rencana_pengadaan_detail_spesifikasi"`
	RencanaPengadaanDetailDisetujui   bool      `gorm:"column:rencana_pengadaan_detail_disetujui;not null;default:false" json:"rencana_pengadaan_detail_disetujui"`
}

func (RencanaPengadaanDetailModel) TableName() string {
	return "rencana_pengadaan_detail"
}

func (m *RencanaPengadaanDetailModel) BeforeCreate(tx *gorm.DB) error {
	if m.RencanaPengadaanDetailID == uuid.Nil {
		m.RencanaPengadaanDetailID = uuid.New()
	}
	return nil
}

// TotalHarga: jumlah × harga satuan (diturunkan, tidak disimpan).
func (m *RencanaPengadaanDetailModel) TotalHarga() int64 {
	return int64(m.RencanaPengadaanDetailJumlah) * m.RencanaPengadaanDetailHargaSatuan
}
