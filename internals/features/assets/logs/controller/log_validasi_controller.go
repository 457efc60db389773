package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/logs/dto"
	helper "simaset_backend/internals/helpers"
	"simaset_backend/internals/workflows"
)

type LogValidasiController struct {
	DB *gorm.DB
}

func NewLogValidasiController(db *gorm.DB) *LogValidasiController {
	return &LogValidasiController{DB: db}
}

var logSortColumns = map[string]string{
	"created_at": "log_validasi_created_at",
}

var knownEntityKinds = map[workflows.EntityKind]bool{
	workflows.KindBarang:           true,
	workflows.KindPeminjaman:       true,
	workflows.KindRencanaPengadaan: true,
	workflows.KindPenghapusan:      true,
}

// 🟢 GET /api/log-validasi - ledger global, filter kind/user, pagination
func (ctrl *LogValidasiController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&workflows.LogValidasiModel{})
	if kind := c.Query("entity_kind"); kind != "" {
		if !knownEntityKinds[workflows.EntityKind(kind)] {
			return helper.Error(c, fiber.StatusBadRequest, "Jenis entitas tidak dikenal: "+kind)
		}
		q = q.Where("log_validasi_entity_kind = ?", kind)
	}
	if user := c.Query("user_id"); user != "" {
		q = q.Where("log_validasi_user_id = ?", user)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung log validasi")
	}

	order, err := p.SafeOrderClause(logSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kolom sort tidak valid")
	}

	var list []workflows.LogValidasiModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil log validasi")
	}

	resp := make([]dto.LogValidasiResponse, len(list))
	for i := range list {
		resp[i] = dto.ToLogValidasiResponse(&list[i])
	}
	return c.JSON(fiber.Map{
		"message": "Log validasi berhasil diambil",
		"data":    resp,
		"meta":    helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/log-validasi/:kind/:id - riwayat satu entitas, urut kronologis
func (ctrl *LogValidasiController) GetByEntity(c *fiber.Ctx) error {
	kind := workflows.EntityKind(c.Params("kind"))
	if !knownEntityKinds[kind] {
		return helper.Error(c, fiber.StatusBadRequest, "Jenis entitas tidak dikenal: "+string(kind))
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var list []workflows.LogValidasiModel
	if err := ctrl.DB.
		Where("log_validasi_entity_kind = ? AND log_validasi_entity_id = ?", kind, id).
		Order("log_validasi_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat entitas")
	}

	resp := make([]dto.LogValidasiResponse, len(list))
	for i := range list {
		resp[i] = dto.ToLogValidasiResponse(&list[i])
	}
	return helper.Success(c, "Riwayat entitas berhasil diambil", resp)
}
