package dto

import (
	"time"

	"github.com/google/uuid"

	"simaset_backend/internals/features/assets/procurements/model"
)

type CreateRencanaPengadaanRequest struct {
	Keterangan string                `json:"keterangan"`
	Details    []CreateDetailRequest `json:"details" validate:"required,min=1,dive"`
}

type CreateDetailRequest struct {
	NamaBarang  string `json:"nama_barang" validate:"required,min=2,max=150"`
	Jumlah      int    `json:"jumlah" validate:"required,gt=0"`
	Satuan      string `json:"satuan" validate:"required,max=30"`
	HargaSatuan int64  `json:"harga_satuan" validate:"required,gt=0"`
	Spesifikasi string `json:"spesifikasi"`
}

type TransitionRencanaPengadaanRequest struct {
	Status  string  `json:"status" validate:"required"`
	Catatan *string `json:"catatan,omitempty"`
}

// ValidateDetailsRequest: validasi batch baris oleh Penata Usaha Barang.
type ValidateDetailsRequest struct {
	Items   []DetailDecision `json:"items" validate:"required,min=1,dive"`
	Catatan *string          `json:"catatan,omitempty"`
}

type DetailDecision struct {
	DetailID  uuid.UUID `json:"detail_id" validate:"required"`
	Disetujui bool      `json:"disetujui"`
}

type DetailResponse struct {
	DetailID    uuid.UUID `json:"detail_id"`
	NamaBarang  string    `json:"nama_barang"`
	Jumlah      int       `json:"jumlah"`
	Satuan      string    `json:"satuan"`
	HargaSatuan int64     `json:"harga_satuan"`
	TotalHarga  int64     `json:"total_harga"`
	Spesifikasi string    `json:"spesifikasi"`
	Disetujui   bool      `json:"disetujui"`
}

type RencanaPengadaanResponse struct {
	RencanaPengadaanID uuid.UUID        `json:"rencana_pengadaan_id"`
	Nomor              string           `json:"nomor"`
	UserID             uuid.UUID        `json:"user_id"`
	Keterangan         string           `json:"keterangan"`
	Status             string           `json:"status"`
	CatatanPenolakan   *string          `json:"catatan_penolakan,omitempty"`
	TotalNilai         int64            `json:"total_nilai"`
	Details            []DetailResponse `json:"details,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

func ToDetailResponse(m *model.RencanaPengadaanDetailModel) DetailResponse {
	return DetailResponse{
		DetailID:    m.RencanaPengadaanDetailID,
		NamaBarang:  m.RencanaPengadaanDetailNamaBarang,
		Jumlah:      m.RencanaPengadaanDetailJumlah,
		Satuan:      m.RencanaPengadaanDetailSatuan,
		HargaSatuan: m.RencanaPengadaanDetailHargaSatuan,
		TotalHarga:  m.TotalHarga(),
		Spesifikasi: m.RencanaPengadaanDetailSpesifikasi,
		Disetujui:   m.RencanaPengadaanDetailDisetujui,
	}
}

func ToRencanaPengadaanResponse(m *model.RencanaPengadaanModel) RencanaPengadaanResponse {
	details := make([]DetailResponse, len(m.Details))
	var total int64
	for i := range m.Details {
		details[i] = ToDetailResponse(&m.Details[i])
		total += m.Details[i].TotalHarga()
	}
	return RencanaPengadaanResponse{
		RencanaPengadaanID: m.RencanaPengadaanID,
		Nomor:              m.RencanaPengadaanNomor,
		UserID:             m.RencanaPengadaanUserID,
		Keterangan:         m.RencanaPengadaanKeterangan,
		Status:             m.RencanaPengadaanStatus,
		CatatanPenolakan:   m.RencanaPengadaanCatatanPenolakan,
		TotalNilai:         total,
		Details:            details,
		CreatedAt:          m.RencanaPengadaanCreatedAt,
	}
}
