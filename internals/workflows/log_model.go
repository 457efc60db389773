package workflows

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogValidasiModel adalah ledger append-only seluruh transisi workflow.
// Asosiasi ke entitas memakai pasangan (entity_kind, entity_id), bukan empat
// kolom foreign key nullable. Baris tidak pernah di-update / dihapus.
type LogValidasiModel struct {
	LogValidasiID            uuid.UUID  `gorm:"column:log_validasi_id;type:uuid;primaryKey" json:"log_validasi_id"`
	LogValidasiEntityKind    EntityKind `gorm:"column:log_validasi_entity_kind;type:varchar(32);not null;index:idx_log_validasi_entity" json:"log_validasi_entity_kind"`
	LogValidasiEntityID      uuid.UUID  `gorm:"column:log_validasi_entity_id;type:uuid;not null;index:idx_log_validasi_entity" json:"log_validasi_entity_id"`
	LogValidasiUserID        uuid.UUID  `gorm:"column:log_validasi_user_id;type:uuid;not null" json:"log_validasi_user_id"`
	LogValidasiStatusSebelum string     `gorm:"column:log_validasi_status_sebelum;type:varchar(50);not null" json:"log_validasi_status_sebelum"`
	LogValidasiStatusSesudah string     `gorm:"column:log_validasi_status_sesudah;type:varchar(50);not null" json:"log_validasi_status_sesudah"`
	LogValidasiCatatan       *string    `gorm:"column:log_validasi_catatan;type:text" json:"log_validasi_catatan,omitempty"`
	LogValidasiCreatedAt     time.Time  `gorm:"column:log_validasi_created_at;autoCreateTime" json:"log_validasi_created_at"`
}

func (LogValidasiModel) TableName() string {
	return "log_validasi"
}

func (m *LogValidasiModel) BeforeCreate(tx *gorm.DB) error {
	if m.LogValidasiID == uuid.Nil {
		m.LogValidasiID = uuid.New()
	}
	return nil
}
