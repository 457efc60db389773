package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/procurements/model"
	"simaset_backend/internals/workflows"
)

type RencanaPengadaanService struct {
	DB *gorm.DB
}

func NewRencanaPengadaanService(db *gorm.DB) *RencanaPengadaanService {
	return &RencanaPengadaanService{DB: db}
}

// CreateRencanaPengadaan membuat header + minimal satu baris detail dan
// nomor usulan unik RP-YYYYMM-XXXX dalam satu transaksi.
func (s *RencanaPengadaanService) CreateRencanaPengadaan(actor workflows.Actor, header *model.RencanaPengadaanModel, details []model.RencanaPengadaanDetailModel) error {
	if len(details) == 0 {
		return workflows.Validation("usulan pengadaan harus punya minimal satu barang")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		nomor, err := nextNomor(tx)
		if err != nil {
			return err
		}

		header.RencanaPengadaanNomor = nomor
		header.RencanaPengadaanUserID = actor.ID
		header.RencanaPengadaanStatus = workflows.StatusDiajukan
		if err := tx.Create(header).Error; err != nil {
			return workflows.Persistence(err)
		}

		for i := range details {
			details[i].RencanaPengadaanDetailHeaderID = header.RencanaPengadaanID
			details[i].RencanaPengadaanDetailDisetujui = false
		}
		if err := tx.Create(&details).Error; err != nil {
			return workflows.Persistence(err)
		}
		header.Details = details
		return nil
	})
}

// TransitionRencanaPengadaan menggeser status header lewat tabel transisi.
// Catatan penolakan (wajib saat Ditolak) ikut disimpan di header.
func (s *RencanaPengadaanService) TransitionRencanaPengadaan(actor workflows.Actor, headerID uuid.UUID, target string, catatan *string) (*model.RencanaPengadaanModel, error) {
	var header model.RencanaPengadaanModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&header, "rencana_pengadaan_id = ?", headerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan pengadaan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		var effect workflows.SideEffect
		if target == workflows.StatusDitolak {
			effect = func(tx *gorm.DB) error {
				header.RencanaPengadaanCatatanPenolakan = catatan
				if err := tx.Model(&model.RencanaPengadaanModel{}).
					Where("rencana_pengadaan_id = ?", header.RencanaPengadaanID).
					Update("rencana_pengadaan_catatan_penolakan", catatan).Error; err != nil {
					return workflows.Persistence(err)
				}
				return nil
			}
		}

		tg := workflows.Target{
			Model:        &model.RencanaPengadaanModel{},
			IDColumn:     "rencana_pengadaan_id",
			StatusColumn: "rencana_pengadaan_status",
			ID:           header.RencanaPengadaanID,
			Current:      header.RencanaPengadaanStatus,
		}
		if err := workflows.Apply(tx, workflows.ProcurementTable, actor, tg, target, catatan, effect); err != nil {
			return err
		}

		header.RencanaPengadaanStatus = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// ValidateDetails: langkah validasi per-baris oleh Penata Usaha Barang.
// Header lalu maju ke Menunggu Persetujuan TANPA memandang hasil per baris -
// usulan yang seluruh barisnya ditolak tetap naik ke Kepala Dinas (perilaku
// produk yang dipertahankan). Satu baris log untuk seluruh batch.
func (s *RencanaPengadaanService) ValidateDetails(actor workflows.Actor, headerID uuid.UUID, decisions map[uuid.UUID]bool, catatan *string) (*model.RencanaPengadaanModel, error) {
	var header model.RencanaPengadaanModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Details").First(&header, "rencana_pengadaan_id = ?", headerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan pengadaan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		if actor.Role != constants.RolePenataUsahaBarang {
			return workflows.Forbidden("validasi barang usulan hanya boleh dilakukan Penata Usaha Barang")
		}
		if header.RencanaPengadaanStatus != workflows.StatusDivalidasiPenatausahaan {
			return workflows.InvalidTransition(
				fmt.Sprintf("validasi barang usulan hanya bisa saat status %q, sekarang %q",
					workflows.StatusDivalidasiPenatausahaan, header.RencanaPengadaanStatus))
		}

		// Keputusan harus menunjuk baris milik usulan ini.
		known := make(map[uuid.UUID]bool, len(header.Details))
		for i := range header.Details {
			known[header.Details[i].RencanaPengadaanDetailID] = true
		}
		for id := range decisions {
			if !known[id] {
				return workflows.Validation("detail " + id.String() + " bukan bagian dari usulan ini")
			}
		}

		for id, disetujui := range decisions {
			if err := tx.Model(&model.RencanaPengadaanDetailModel{}).
				Where("rencana_pengadaan_detail_id = ?", id).
				Update("rencana_pengadaan_detail_disetujui", disetujui).Error; err != nil {
				return workflows.Persistence(err)
			}
		}
		for i := range header.Details {
			if v, ok := decisions[header.Details[i].RencanaPengadaanDetailID]; ok {
				header.Details[i].RencanaPengadaanDetailDisetujui = v
			}
		}

		if err := workflows.SwapStatus(tx, workflows.Target{
			Model:        &model.RencanaPengadaanModel{},
			IDColumn:     "rencana_pengadaan_id",
			StatusColumn: "rencana_pengadaan_status",
			ID:           header.RencanaPengadaanID,
			Current:      header.RencanaPengadaanStatus,
		}, workflows.StatusMenungguPersetujuan); err != nil {
			return err
		}

		// Satu entri log sintetis untuk seluruh batch, bukan per baris.
		if err := workflows.AppendLog(tx, workflows.KindRencanaPengadaan,
			header.RencanaPengadaanID, actor.ID,
			header.RencanaPengadaanStatus, workflows.StatusMenungguPersetujuan, catatan); err != nil {
			return err
		}

		header.RencanaPengadaanStatus = workflows.StatusMenungguPersetujuan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// DeleteRencanaPengadaan: hanya pembuat, hanya selama Diajukan.
func (s *RencanaPengadaanService) DeleteRencanaPengadaan(actor workflows.Actor, headerID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var header model.RencanaPengadaanModel
		if err := tx.First(&header, "rencana_pengadaan_id = ?", headerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("usulan pengadaan tidak ditemukan")
			}
			return workflows.Persistence(err)
		}
		if header.RencanaPengadaanUserID != actor.ID {
			return workflows.Forbidden("hanya pembuat yang boleh menghapus usulannya sendiri")
		}
		if header.RencanaPengadaanStatus != workflows.StatusDiajukan {
			return workflows.InvalidTransition("usulan sudah diproses dan tidak bisa dihapus")
		}

		if err := tx.Delete(&model.RencanaPengadaanDetailModel{},
			"rencana_pengadaan_detail_header_id = ?", headerID).Error; err != nil {
			return workflows.Persistence(err)
		}
		if err := tx.Delete(&model.RencanaPengadaanModel{},
			"rencana_pengadaan_id = ?", headerID).Error; err != nil {
			return workflows.Persistence(err)
		}
		return nil
	})
}

// nextNomor membuat nomor usulan RP-YYYYMM-XXXX, berurutan per bulan.
func nextNomor(tx *gorm.DB) (string, error) {
	prefix := fmt.Sprintf("RP-%s-", time.Now().Format("200601"))
	var count int64
	if err := tx.Model(&model.RencanaPengadaanModel{}).
		Where("rencana_pengadaan_nomor LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", workflows.Persistence(err)
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}
