package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/workflows"
)

// BarangService memegang operasi workflow atas barang. Query list/detail
// tetap di controller mengikuti pola repo ini.
type BarangService struct {
	DB *gorm.DB
}

func NewBarangService(db *gorm.DB) *BarangService {
	return &BarangService{DB: db}
}

// ValidateBarang: Menunggu Validasi → Tersedia / Ditolak oleh Pengurus Barang.
// Mutasi status + satu baris log dalam satu transaksi.
func (s *BarangService) ValidateBarang(actor workflows.Actor, barangID uuid.UUID, disetujui bool, catatan *string) (*model.BarangModel, error) {
	var barang model.BarangModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&barang, "barang_id = ?", barangID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflows.NotFound("barang tidak ditemukan")
			}
			return workflows.Persistence(err)
		}

		target := workflows.StatusTersedia
		if !disetujui {
			target = workflows.StatusDitolak
		}

		tg := workflows.Target{
			Model:        &model.BarangModel{},
			IDColumn:     "barang_id",
			StatusColumn: "barang_status",
			ID:           barang.BarangID,
			Current:      barang.BarangStatus,
		}
		if err := workflows.Apply(tx, workflows.ItemValidationTable, actor, tg, target, catatan, nil); err != nil {
			return err
		}

		barang.BarangStatus = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &barang, nil
}
