package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	barangModel "simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/features/assets/loans/model"
	"simaset_backend/internals/workflows"
)

type PeminjamanService struct {
	DB *gorm.DB
}

func NewPeminjamanService(db *gorm.DB) *PeminjamanService {
	return &PeminjamanService{DB: db}
}

// CreatePeminjaman membuat permohonan berstatus Diajukan. Barang harus
// Tersedia saat pengajuan, tapi statusnya TIDAK diubah di sini - barang baru
// dikunci saat approval (permohonan pertama yang disetujui yang menang).
func (s *PeminjamanService) CreatePeminjaman(actor workflows.Actor, loan *model.PeminjamanModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var barang barangModel.BarangModel
		if err := tx.First(&barang, "barang_id = ?", loan.PeminjamanBarangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("barang tidak ditemukan")
			}
			return workflows.Persistence(err)
		}
		if barang.BarangStatus != workflows.StatusTersedia {
			return workflows.Validation("barang tidak tersedia untuk dipinjam (status: " + barang.BarangStatus + ")")
		}

		loan.PeminjamanUserID = actor.ID
		loan.PeminjamanStatus = workflows.StatusDiajukan
		if err := tx.Create(loan).Error; err != nil {
			return workflows.Persistence(err)
		}
		return nil
	})
}

// TransitionPeminjaman menggeser status permohonan lewat tabel transisi.
// Side effect ke barang ikut dalam transaksi yang sama:
//   - Diajukan → Divalidasi Pengurus Barang : barang Tersedia → Dipinjam
//   - Divalidasi Pengurus Barang → Selesai  : barang Dipinjam → Tersedia,
//     tanggal aktual kembali diisi sekarang
func (s *PeminjamanService) TransitionPeminjaman(actor workflows.Actor, loanID uuid.UUID, target string, catatan *string) (*model.PeminjamanModel, error) {
	var loan model.PeminjamanModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "peminjaman_id = ?", loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("peminjaman tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		var effect workflows.SideEffect
		switch {
		case loan.PeminjamanStatus == workflows.StatusDiajukan && target == workflows.StatusDivalidasiPengurus:
			effect = func(tx *gorm.DB) error {
				// Kunci barang untuk peminjam; kalau barang sudah tidak
				// Tersedia (permohonan lain menang duluan), transisi gagal.
				if err := workflows.SwapStatus(tx, workflows.Target{
					Model:        &barangModel.BarangModel{},
					IDColumn:     "barang_id",
					StatusColumn: "barang_status",
					ID:           loan.PeminjamanBarangID,
					Current:      workflows.StatusTersedia,
				}, workflows.StatusDipinjam); err != nil {
					return err
				}
				return setPemegang(tx, loan.PeminjamanBarangID, &loan.PeminjamanUserID)
			}

		case loan.PeminjamanStatus == workflows.StatusDivalidasiPengurus && target == workflows.StatusSelesai:
			effect = func(tx *gorm.DB) error {
				if err := workflows.SwapStatus(tx, workflows.Target{
					Model:        &barangModel.BarangModel{},
					IDColumn:     "barang_id",
					StatusColumn: "barang_status",
					ID:           loan.PeminjamanBarangID,
					Current:      workflows.StatusDipinjam,
				}, workflows.StatusTersedia); err != nil {
					return err
				}
				if err := setPemegang(tx, loan.PeminjamanBarangID, nil); err != nil {
					return err
				}
				now := time.Now()
				loan.PeminjamanTanggalAktualKembali = &now
				if err := tx.Model(&model.PeminjamanModel{}).
					Where("peminjaman_id = ?", loan.PeminjamanID).
					Update("peminjaman_tanggal_aktual_kembali", now).Error; err != nil {
					return workflows.Persistence(err)
				}
				return nil
			}

		case target == workflows.StatusDitolak:
			effect = func(tx *gorm.DB) error {
				loan.PeminjamanCatatanPenolakan = catatan
				if err := tx.Model(&model.PeminjamanModel{}).
					Where("peminjaman_id = ?", loan.PeminjamanID).
					Update("peminjaman_catatan_penolakan", catatan).Error; err != nil {
					return workflows.Persistence(err)
				}
				return nil
			}
		}

		tg := workflows.Target{
			Model:        &model.PeminjamanModel{},
			IDColumn:     "peminjaman_id",
			StatusColumn: "peminjaman_status",
			ID:           loan.PeminjamanID,
			Current:      loan.PeminjamanStatus,
		}
		if err := workflows.Apply(tx, workflows.LoanTable, actor, tg, target, catatan, effect); err != nil {
			return err
		}

		loan.PeminjamanStatus = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// DeletePeminjaman: hanya pemohon asli, hanya selama masih Diajukan.
func (s *PeminjamanService) DeletePeminjaman(actor workflows.Actor, loanID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var loan model.PeminjamanModel
		if err := tx.First(&loan, "peminjaman_id = ?", loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("peminjaman tidak ditemukan")
			}
			return workflows.Persistence(err)
		}
		if loan.PeminjamanUserID != actor.ID {
			return workflows.Forbidden("hanya pemohon yang boleh menghapus permohonannya sendiri")
		}
		if loan.PeminjamanStatus != workflows.StatusDiajukan {
			return workflows.InvalidTransition("permohonan sudah diproses dan tidak bisa dihapus")
		}
		if err := tx.Delete(&model.PeminjamanModel{}, "peminjaman_id = ?", loanID).Error; err != nil {
			return workflows.Persistence(err)
		}
		return nil
	})
}

func setPemegang(tx *gorm.DB, barangID uuid.UUID, pemegang *uuid.UUID) error {
	if err := tx.Model(&barangModel.BarangModel{}).
		Where("barang_id = ?", barangID).
		Update("barang_pemegang_id", pemegang).Error; err != nil {
		return workflows.Persistence(err)
	}
	return nil
}
