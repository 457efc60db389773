package dto

import (
	"time"

	"github.com/google/uuid"

	"simaset_backend/internals/workflows"
)

type LogValidasiResponse struct {
	LogID         uuid.UUID            `json:"log_id"`
	EntityKind    workflows.EntityKind `json:"entity_kind"`
	EntityID      uuid.UUID            `json:"entity_id"`
	UserID        uuid.UUID            `json:"user_id"`
	StatusSebelum string               `json:"status_sebelum"`
	StatusSesudah string               `json:"status_sesudah"`
	Catatan       *string              `json:"catatan,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToLogValidasiResponse(m *workflows.LogValidasiModel) LogValidasiResponse {
	return LogValidasiResponse{
		LogID:         m.LogValidasiID,
		EntityKind:    m.LogValidasiEntityKind,
		EntityID:      m.LogValidasiEntityID,
		UserID:        m.LogValidasiUserID,
		StatusSebelum: m.LogValidasiStatusSebelum,
		StatusSesudah: m.LogValidasiStatusSesudah,
		Catatan:       m.LogValidasiCatatan,
		CreatedAt:     m.LogValidasiCreatedAt,
	}
}
