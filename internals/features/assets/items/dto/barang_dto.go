package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"simaset_backend/internals/features/assets/items/model"
)

type CreateBarangRequest struct {
	Kode             string     `json:"kode" validate:"required,min=3,max=50"`
	Nama             string     `json:"nama" validate:"required,min=2,max=150"`
	KategoriID       uuid.UUID  `json:"kategori_id" validate:"required"`
	LokasiID         *uuid.UUID `json:"lokasi_id,omitempty"`
	Spesifikasi      string     `json:"spesifikasi"`
	TanggalPerolehan *string    `json:"tanggal_perolehan,omitempty"` // YYYY-MM-DD
	NilaiPerolehan   int64      `json:"nilai_perolehan" validate:"gte=0"`
	SumberDana       *string    `json:"sumber_dana,omitempty"`
	FotoURL          *string    `json:"foto_url,omitempty"`
}

type ValidateBarangRequest struct {
	Disetujui bool    `json:"disetujui"`
	Catatan   *string `json:"catatan,omitempty"`
}

// UpdateBarangRequest dipakai edit langsung oleh Admin, termasuk status
// administratif (Dalam Perbaikan / Rusak Berat) di luar workflow.
type UpdateBarangRequest struct {
	Nama        *string    `json:"nama,omitempty" validate:"omitempty,min=2,max=150"`
	KategoriID  *uuid.UUID `json:"kategori_id,omitempty"`
	LokasiID    *uuid.UUID `json:"lokasi_id,omitempty"`
	Spesifikasi *string    `json:"spesifikasi,omitempty"`
	Status      *string    `json:"status,omitempty"`
	FotoURL     *string    `json:"foto_url,omitempty"`
	QRCodeURL   *string    `json:"qrcode_url,omitempty"`
}

type BarangResponse struct {
	BarangID         uuid.UUID       `json:"barang_id"`
	Kode             string          `json:"kode"`
	Nama             string          `json:"nama"`
	KategoriID       uuid.UUID       `json:"kategori_id"`
	LokasiID         *uuid.UUID      `json:"lokasi_id,omitempty"`
	Spesifikasi      string          `json:"spesifikasi"`
	TanggalPerolehan *datatypes.Date `json:"tanggal_perolehan,omitempty"`
	NilaiPerolehan   int64           `json:"nilai_perolehan"`
	SumberDana       *string         `json:"sumber_dana,omitempty"`
	Status           string          `json:"status"`
	FotoURL          *string         `json:"foto_url,omitempty"`
	QRCodeURL        *string         `json:"qrcode_url,omitempty"`
	PemegangID       *uuid.UUID      `json:"pemegang_id,omitempty"`
	DiajukanOleh     uuid.UUID       `json:"diajukan_oleh"`
	CreatedAt        time.Time       `json:"created_at"`
}

func ToBarangResponse(m *model.BarangModel) BarangResponse {
	return BarangResponse{
		BarangID:         m.BarangID,
		Kode:             m.BarangKode,
		Nama:             m.BarangNama,
		KategoriID:       m.BarangKategoriID,
		LokasiID:         m.BarangLokasiID,
		Spesifikasi:      m.BarangSpesifikasi,
		TanggalPerolehan: m.BarangTanggalPerolehan,
		NilaiPerolehan:   m.BarangNilaiPerolehan,
		SumberDana:       m.BarangSumberDana,
		Status:           m.BarangStatus,
		FotoURL:          m.BarangFotoURL,
		QRCodeURL:        m.BarangQRCodeURL,
		PemegangID:       m.BarangPemegangID,
		DiajukanOleh:     m.BarangDiajukanOleh,
		CreatedAt:        m.BarangCreatedAt,
	}
}
