package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/disposals/dto"
	"simaset_backend/internals/features/assets/disposals/model"
	"simaset_backend/internals/features/assets/disposals/service"
	helper "simaset_backend/internals/helpers"
)

type PenghapusanController struct {
	DB       *gorm.DB
	Service  *service.PenghapusanService
	Validate *validator.Validate
}

func NewPenghapusanController(db *gorm.DB) *PenghapusanController {
	return &PenghapusanController{
		DB:       db,
		Service:  service.NewPenghapusanService(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/penghapusan
func (ctrl *PenghapusanController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.CreatePenghapusanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	proposal := model.PenghapusanModel{
		PenghapusanBarangID:     req.BarangID,
		PenghapusanAlasan:       req.Alasan,
		PenghapusanFotoBuktiURL: req.FotoBuktiURL,
	}
	if err := ctrl.Service.CreatePenghapusan(actor, &proposal); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usulan penghapusan diajukan", dto.ToPenghapusanResponse(&proposal))
}

// 🟢 GET /api/penghapusan - antrean, filter status opsional
func (ctrl *PenghapusanController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.PenghapusanModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("penghapusan_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung usulan penghapusan")
	}

	var list []model.PenghapusanModel
	if err := q.Order("penghapusan_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar usulan penghapusan")
	}

	resp := make([]dto.PenghapusanResponse, len(list))
	for i := range list {
		resp[i] = dto.ToPenghapusanResponse(&list[i])
	}
	return c.JSON(fiber.Map{
		"message": "Daftar usulan penghapusan berhasil diambil",
		"data":    resp,
		"meta":    helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/penghapusan/:id
func (ctrl *PenghapusanController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var proposal model.PenghapusanModel
	if err := ctrl.DB.First(&proposal, "penghapusan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usulan penghapusan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data usulan penghapusan")
	}
	return helper.Success(c, "Detail usulan penghapusan berhasil diambil", dto.ToPenghapusanResponse(&proposal))
}

// 🟢 GET /api/penghapusan/:id/berita-acara - proyeksi untuk pembuat dokumen
func (ctrl *PenghapusanController) GetBeritaAcaraProjection(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var proj dto.BeritaAcaraProjection
	err = ctrl.DB.Table("penghapusan").
		Select(`penghapusan.penghapusan_id,
			users.user_name AS nama_pengusul,
			users.user_nip AS nip_pengusul,
			barang.barang_nama AS nama_barang,
			barang.barang_kode AS kode_barang,
			penghapusan.penghapusan_alasan AS alasan,
			penghapusan.penghapusan_status AS status,
			penghapusan.penghapusan_dokumen_url AS dokumen_url`).
		Joins("JOIN users ON users.user_id = penghapusan.penghapusan_user_id").
		Joins("JOIN barang ON barang.barang_id = penghapusan.penghapusan_barang_id").
		Where("penghapusan.penghapusan_id = ?", id).
		Take(&proj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usulan penghapusan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data berita acara")
	}
	return helper.Success(c, "Data berita acara berhasil diambil", proj)
}

// 🟢 PATCH /api/penghapusan/:id/status
func (ctrl *PenghapusanController) Transition(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.TransitionPenghapusanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	proposal, err := ctrl.Service.TransitionPenghapusan(actor, id, req.Status, req.Catatan)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Status usulan penghapusan diperbarui", dto.ToPenghapusanResponse(proposal))
}

// 🟢 POST /api/penghapusan/:id/dokumen - simpan referensi dokumen bertanda
// tangan dari kolaborator upload; usulan Selesai + barang Tidak Aktif
func (ctrl *PenghapusanController) UploadDokumen(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.UploadDokumenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	proposal, err := ctrl.Service.UploadDokumen(actor, id, req.DokumenURL)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Dokumen tersimpan, penghapusan selesai", dto.ToPenghapusanResponse(proposal))
}

// 🟢 DELETE /api/penghapusan/:id/dokumen - kompensasi: batalkan dokumen
func (ctrl *PenghapusanController) RevertDokumen(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	proposal, err := ctrl.Service.RevertDokumen(actor, id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Dokumen dibatalkan, status dikembalikan", dto.ToPenghapusanResponse(proposal))
}
