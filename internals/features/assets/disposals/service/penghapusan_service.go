package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/disposals/model"
	barangModel "simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/workflows"
)

type PenghapusanService struct {
	DB *gorm.DB
}

func NewPenghapusanService(db *gorm.DB) *PenghapusanService {
	return &PenghapusanService{DB: db}
}

// CreatePenghapusan: barang yang sedang dipinjam tidak boleh diusulkan hapus.
func (s *PenghapusanService) CreatePenghapusan(actor workflows.Actor, proposal *model.PenghapusanModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var barang barangModel.BarangModel
		if err := tx.First(&barang, "barang_id = ?", proposal.PenghapusanBarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("barang tidak ditemukan")
			}
			return workflows.Persistence(err)
		}
		if barang.BarangStatus == workflows.StatusDipinjam {
			return workflows.Validation("barang sedang dipinjam dan tidak bisa diusulkan untuk dihapus")
		}
		if barang.BarangStatus == workflows.StatusTidakAktif {
			return workflows.Validation("barang sudah tidak aktif")
		}

		proposal.PenghapusanUserID = actor.ID
		proposal.PenghapusanStatus = workflows.StatusDiajukan
		if err := tx.Create(proposal).Error; err != nil {
			return workflows.Persistence(err)
		}
		return nil
	})
}

// TransitionPenghapusan: rantai Pengurus Barang → Penata Usaha Barang →
// Kepala Dinas. Selesai TIDAK bisa dicapai lewat sini - hanya lewat
// UploadDokumen. Menolak wajib ada catatan (diperiksa tabel).
func (s *PenghapusanService) TransitionPenghapusan(actor workflows.Actor, proposalID uuid.UUID, target string, catatan *string) (*model.PenghapusanModel, error) {
	if target == workflows.StatusSelesai {
		return nil, workflows.InvalidTransition("penghapusan diselesaikan lewat upload dokumen bertanda tangan, bukan transisi status")
	}

	var proposal model.PenghapusanModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "penghapusan_id = ?", proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan penghapusan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		var effect workflows.SideEffect
		if target == workflows.StatusDitolak {
			effect = func(tx *gorm.DB) error {
				proposal.PenghapusanCatatanPenolakan = catatan
				if err := tx.Model(&model.PenghapusanModel{}).
					Where("penghapusan_id = ?", proposal.PenghapusanID).
					Update("penghapusan_catatan_penolakan", catatan).Error; err != nil {
					return workflows.Persistence(err)
				}
				return nil
			}
		}

		tg := workflows.Target{
			Model:        &model.PenghapusanModel{},
			IDColumn:     "penghapusan_id",
			StatusColumn: "penghapusan_status",
			ID:           proposal.PenghapusanID,
			Current:      proposal.PenghapusanStatus,
		}
		if err := workflows.Apply(tx, workflows.DisposalTable, actor, tg, target, catatan, effect); err != nil {
			return err
		}

		proposal.PenghapusanStatus = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// UploadDokumen: hanya saat Disetujui Kepala Dinas. Menyimpan referensi
// dokumen, menutup usulan (Selesai), dan menonaktifkan barang - atomik.
func (s *PenghapusanService) UploadDokumen(actor workflows.Actor, proposalID uuid.UUID, dokumenURL string) (*model.PenghapusanModel, error) {
	if dokumenURL == "" {
		return nil, workflows.Validation("referensi dokumen tidak boleh kosong")
	}

	var proposal model.PenghapusanModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "penghapusan_id = ?", proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan penghapusan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		effect := func(tx *gorm.DB) error {
			if err := tx.Model(&model.PenghapusanModel{}).
				Where("penghapusan_id = ?", proposal.PenghapusanID).
				Update("penghapusan_dokumen_url", dokumenURL).Error; err != nil {
				return workflows.Persistence(err)
			}
			var barang barangModel.BarangModel
			if err := tx.First(&barang, "barang_id = ?", proposal.PenghapusanBarangID).Error; err != nil {
				return workflows.Persistence(err)
			}
			return workflows.SwapStatus(tx, workflows.Target{
				Model:        &barangModel.BarangModel{},
				IDColumn:     "barang_id",
				StatusColumn: "barang_status",
				ID:           barang.BarangID,
				Current:      barang.BarangStatus,
			}, workflows.StatusTidakAktif)
		}

		tg := workflows.Target{
			Model:        &model.PenghapusanModel{},
			IDColumn:     "penghapusan_id",
			StatusColumn: "penghapusan_status",
			ID:           proposal.PenghapusanID,
			Current:      proposal.PenghapusanStatus,
		}
		if err := workflows.Apply(tx, workflows.DisposalTable, actor, tg, workflows.StatusSelesai, nil, effect); err != nil {
			return err
		}

		proposal.PenghapusanStatus = workflows.StatusSelesai
		proposal.PenghapusanDokumenURL = &dokumenURL
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// RevertDokumen adalah transaksi kompensasi: menghapus referensi dokumen,
// mengembalikan usulan ke Divalidasi Pengurus Barang, dan menghidupkan
// kembali barang (Tersedia). Dua mutasi itu berhasil bersama atau batal
// bersama. Ini satu-satunya jalur status bergerak mundur.
func (s *PenghapusanService) RevertDokumen(actor workflows.Actor, proposalID uuid.UUID) (*model.PenghapusanModel, error) {
	var proposal model.PenghapusanModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "penghapusan_id = ?", proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan penghapusan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}
		if proposal.PenghapusanDokumenURL == nil {
			return workflows.InvalidTransition("tidak ada dokumen yang bisa dibatalkan")
		}

		if err := workflows.SwapStatus(tx, workflows.Target{
			Model:        &model.PenghapusanModel{},
			IDColumn:     "penghapusan_id",
			StatusColumn: "penghapusan_status",
			ID:           proposal.PenghapusanID,
			Current:      proposal.PenghapusanStatus,
		}, workflows.StatusDivalidasiPengurus); err != nil {
			return err
		}

		if err := tx.Model(&model.PenghapusanModel{}).
			Where("penghapusan_id = ?", proposal.PenghapusanID).
			Update("penghapusan_dokumen_url", nil).Error; err != nil {
			return workflows.Persistence(err)
		}

		if err := workflows.SwapStatus(tx, workflows.Target{
			Model:        &barangModel.BarangModel{},
			IDColumn:     "barang_id",
			StatusColumn: "barang_status",
			ID:           proposal.PenghapusanBarangID,
			Current:      workflows.StatusTidakAktif,
		}, workflows.StatusTersedia); err != nil {
			return err
		}

		if err := workflows.AppendLog(tx, workflows.KindPenghapusan,
			proposal.PenghapusanID, actor.ID,
			proposal.PenghapusanStatus, workflows.StatusDivalidasiPengurus, nil); err != nil {
			return err
		}

		proposal.PenghapusanStatus = workflows.StatusDivalidasiPengurus
		proposal.PenghapusanDokumenURL = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
