package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"simaset_backend/internals/features/assets/loans/model"
)

type CreatePeminjamanRequest struct {
	BarangID          uuid.UUID `json:"barang_id" validate:"required"`
	TanggalMulai      string    `json:"tanggal_mulai" validate:"required"`   // YYYY-MM-DD
	TanggalKembali    string    `json:"tanggal_kembali" validate:"required"` // YYYY-MM-DD
	Keperluan         string    `json:"keperluan" validate:"required,min=5"`
	NamaPihakKedua    *string   `json:"nama_pihak_kedua,omitempty"`
	JabatanPihakKedua *string   `json:"jabatan_pihak_kedua,omitempty"`
}

type TransitionPeminjamanRequest struct {
	Status  string  `json:"status" validate:"required"`
	Catatan *string `json:"catatan,omitempty"`
}

type PeminjamanResponse struct {
	PeminjamanID          uuid.UUID      `json:"peminjaman_id"`
	BarangID              uuid.UUID      `json:"barang_id"`
	UserID                uuid.UUID      `json:"user_id"`
	TanggalMulai          datatypes.Date `json:"tanggal_mulai"`
	TanggalKembali        datatypes.Date `json:"tanggal_kembali"`
	TanggalAktualKembali  *time.Time     `json:"tanggal_aktual_kembali,omitempty"`
	Keperluan             string         `json:"keperluan"`
	Status                string         `json:"status"`
	CatatanPenolakan      *string        `json:"catatan_penolakan,omitempty"`
	NamaPihakKedua        *string        `json:"nama_pihak_kedua,omitempty"`
	JabatanPihakKedua     *string        `json:"jabatan_pihak_kedua,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
}

func ToPeminjamanResponse(m *model.PeminjamanModel) PeminjamanResponse {
	return PeminjamanResponse{
		PeminjamanID:         m.PeminjamanID,
		BarangID:             m.PeminjamanBarangID,
		UserID:               m.PeminjamanUserID,
		TanggalMulai:         m.PeminjamanTanggalMulai,
		TanggalKembali:       m.PeminjamanTanggalKembali,
		TanggalAktualKembali: m.PeminjamanTanggalAktualKembali,
		Keperluan:            m.PeminjamanKeperluan,
		Status:               m.PeminjamanStatus,
		CatatanPenolakan:     m.PeminjamanCatatanPenolakan,
		NamaPihakKedua:       m.PeminjamanNamaPihakKedua,
		JabatanPihakKedua:    m.PeminjamanJabatanPihakKedua,
		CreatedAt:            m.PeminjamanCreatedAt,
	}
}

// SuratPeminjamanProjection: proyeksi read-only untuk kolaborator pembuat
// surat perjanjian. Digabung dari peminjaman + barang + peminjam.
type SuratPeminjamanProjection struct {
	PeminjamanID      uuid.UUID      `json:"peminjaman_id"`
	NamaPeminjam      string         `json:"nama_peminjam"`
	NIPPeminjam       string         `json:"nip_peminjam"`
	NamaBarang        string         `json:"nama_barang"`
	KodeBarang        string         `json:"kode_barang"`
	Spesifikasi       string         `json:"spesifikasi"`
	TanggalMulai      datatypes.Date `json:"tanggal_mulai"`
	TanggalKembali    datatypes.Date `json:"tanggal_kembali"`
	Keperluan         string         `json:"keperluan"`
	Status            string         `json:"status"`
	NamaPihakKedua    *string        `json:"nama_pihak_kedua,omitempty"`
	JabatanPihakKedua *string        `json:"jabatan_pihak_kedua,omitempty"`
}
