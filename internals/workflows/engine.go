package workflows

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor adalah identitas pemanggil hasil resolve layer auth. Engine
// mempercayainya apa adanya.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// Target menunjuk baris entitas yang statusnya akan digeser. Nama kolom
// berbeda per tabel (peminjaman_status, penghapusan_status, dst), jadi
// dieksplisitkan di sini.
type Target struct {
	Model        interface{}
	IDColumn     string
	StatusColumn string
	ID           uuid.UUID
	// Status yang dibaca caller di dalam transaksi yang sama. Dipakai sebagai
	// syarat optimistik saat update: kalau baris sudah tidak di status ini,
	// transisi dianggap kalah balapan.
	Current string
}

// SideEffect dijalankan di dalam transaksi yang sama dengan mutasi status dan
// append log. Gagal satu, rollback semua.
type SideEffect func(tx *gorm.DB) error

// Apply menjalankan satu transisi: guard tabel → swap status optimistik →
// side effect → satu baris log_validasi. Wajib dipanggil di dalam
// tx.Transaction milik service.
func Apply(tx *gorm.DB, table Table, actor Actor, tg Target, to string, note *string, effect SideEffect) error {
	if err := table.Guard(tg.Current, to, actor.Role, note); err != nil {
		return err
	}
	if err := SwapStatus(tx, tg, to); err != nil {
		return err
	}
	if effect != nil {
		if err := effect(tx); err != nil {
			return err
		}
	}
	return AppendLog(tx, table.Kind, tg.ID, actor.ID, tg.Current, to, note)
}

// SwapStatus mengeksekusi UPDATE dengan syarat status lama. RowsAffected 0
// berarti ada penulis lain yang menang duluan.
func SwapStatus(tx *gorm.DB, tg Target, to string) error {
	res := tx.Model(tg.Model).
		Where(fmt.Sprintf("%s = ? AND %s = ?", tg.IDColumn, tg.StatusColumn), tg.ID, tg.Current).
		Update(tg.StatusColumn, to)
	if res.Error != nil {
		return Persistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return Conflict(fmt.Sprintf("status sudah berubah dari %q, transisi dibatalkan", tg.Current))
	}
	return nil
}

// AppendLog menulis satu baris ledger. Dipakai Apply dan operasi khusus
// (validasi batch detail pengadaan, upload/pembatalan dokumen penghapusan).
func AppendLog(tx *gorm.DB, kind EntityKind, entityID, actorID uuid.UUID, before, after string, note *string) error {
	entry := LogValidasiModel{
		LogValidasiEntityKind:    kind,
		LogValidasiEntityID:      entityID,
		LogValidasiUserID:        actorID,
		LogValidasiStatusSebelum: before,
		LogValidasiStatusSesudah: after,
		LogValidasiCatatan:       note,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return Persistence(err)
	}
	return nil
}
