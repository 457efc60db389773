package dto

import (
	"time"

	"github.com/google/uuid"

	"simaset_backend/internals/features/assets/disposals/model"
)

type CreatePenghapusanRequest struct {
	BarangID     uuid.UUID `json:"barang_id" validate:"required"`
	Alasan       string    `json:"alasan" validate:"required,min=10"`
	FotoBuktiURL *string   `json:"foto_bukti_url,omitempty"`
}

type TransitionPenghapusanRequest struct {
	Status  string  `json:"status" validate:"required"`
	Catatan *string `json:"catatan,omitempty"`
}

// UploadDokumenRequest membawa path/URL hasil kolaborator upload eksternal;
// engine hanya menyimpan string-nya.
type UploadDokumenRequest struct {
	DokumenURL string `json:"dokumen_url" validate:"required"`
}

type PenghapusanResponse struct {
	PenghapusanID    uuid.UUID `json:"penghapusan_id"`
	BarangID         uuid.UUID `json:"barang_id"`
	UserID           uuid.UUID `json:"user_id"`
	Alasan           string    `json:"alasan"`
	FotoBuktiURL     *string   `json:"foto_bukti_url,omitempty"`
	DokumenURL       *string   `json:"dokumen_url,omitempty"`
	Status           string    `json:"status"`
	CatatanPenolakan *string   `json:"catatan_penolakan,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToPenghapusanResponse(m *model.PenghapusanModel) PenghapusanResponse {
	return PenghapusanResponse{
		PenghapusanID:    m.PenghapusanID,
		BarangID:         m.PenghapusanBarangID,
		UserID:           m.PenghapusanUserID,
		Alasan:           m.PenghapusanAlasan,
		FotoBuktiURL:     m.PenghapusanFotoBuktiURL,
		DokumenURL:       m.PenghapusanDokumenURL,
		Status:           m.PenghapusanStatus,
		CatatanPenolakan: m.PenghapusanCatatanPenolakan,
		CreatedAt:        m.PenghapusanCreatedAt,
	}
}

// BeritaAcaraProjection: proyeksi read-only untuk kolaborator pembuat
// berita acara penghapusan.
type BeritaAcaraProjection struct {
	PenghapusanID uuid.UUID `json:"penghapusan_id"`
	NamaPengusul  string    `json:"nama_pengusul"`
	NIPPengusul   string    `json:"nip_pengusul"`
	NamaBarang    string    `json:"nama_barang"`
	KodeBarang    string    `json:"kode_barang"`
	Alasan        string    `json:"alasan"`
	Status        string    `json:"status"`
	DokumenURL    *string   `json:"dokumen_url,omitempty"`
}
