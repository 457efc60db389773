package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/procurements/dto"
	"simaset_backend/internals/features/assets/procurements/model"
	"simaset_backend/internals/features/assets/procurements/service"
	helper "simaset_backend/internals/helpers"
)

type RencanaPengadaanController struct {
	DB       *gorm.DB
	Service  *service.RencanaPengadaanService
	Validate *validator.Validate
}

func NewRencanaPengadaanController(db *gorm.DB) *RencanaPengadaanController {
	return &RencanaPengadaanController{
		DB:       db,
		Service:  service.NewRencanaPengadaanService(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/rencana-pengadaan
func (ctrl *RencanaPengadaanController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.CreateRencanaPengadaanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	header := model.RencanaPengadaanModel{
		RencanaPengadaanKeterangan: req.Keterangan,
	}
	details := make([]model.RencanaPengadaanDetailModel, len(req.Details))
	for i, d := range req.Details {
		details[i] = model.RencanaPengadaanDetailModel{
			RencanaPengadaanDetailNamaBarang:  d.NamaBarang,
			RencanaPengadaanDetailJumlah:      d.Jumlah,
			RencanaPengadaanDetailSatuan:      d.Satuan,
			RencanaPengadaanDetailHargaSatuan: d.HargaSatuan,
			RencanaPengadaanDetailSpesifikasi: d.Spesifikasi,
		}
	}

	if err := ctrl.Service.CreateRencanaPengadaan(actor, &header, details); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usulan pengadaan diajukan", dto.ToRencanaPengadaanResponse(&header))
}

// 🟢 GET /api/rencana-pengadaan - antrean, filter status opsional
func (ctrl *RencanaPengadaanController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.RencanaPengadaanModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("rencana_pengadaan_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung usulan pengadaan")
	}

	var list []model.RencanaPengadaanModel
	if err := q.Preload("Details").
		Order("rencana_pengadaan_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar usulan pengadaan")
	}

	resp := make([]dto.RencanaPengadaanResponse, len(list))
	for i := range list {
		resp[i] = dto.ToRencanaPengadaanResponse(&list[i])
	}
	return c.JSON(fiber.Map{
		"message": "Daftar usulan pengadaan berhasil diambil",
		"data":    resp,
		"meta":    helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/rencana-pengadaan/saya
func (ctrl *RencanaPengadaanController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var list []model.RencanaPengadaanModel
	if err := ctrl.DB.Preload("Details").
		Where("rencana_pengadaan_user_id = ?", userID).
		Order("rencana_pengadaan_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar usulan pengadaan")
	}

	resp := make([]dto.RencanaPengadaanResponse, len(list))
	for i := range list {
		resp[i] = dto.ToRencanaPengadaanResponse(&list[i])
	}
	return helper.Success(c, "Daftar usulan pengadaan Anda berhasil diambil", resp)
}

// 🟢 GET /api/rencana-pengadaan/:id - detail + baris, juga dipakai proyeksi
// surat usulan oleh kolaborator pembuat dokumen
func (ctrl *RencanaPengadaanController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var header model.RencanaPengadaanModel
	if err := ctrl.DB.Preload("Details").First(&header, "rencana_pengadaan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usulan pengadaan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data usulan pengadaan")
	}
	return helper.Success(c, "Detail usulan pengadaan berhasil diambil", dto.ToRencanaPengadaanResponse(&header))
}

// 🟢 PATCH /api/rencana-pengadaan/:id/status
func (ctrl *RencanaPengadaanController) Transition(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.TransitionRencanaPengadaanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	header, err := ctrl.Service.TransitionRencanaPengadaan(actor, id, req.Status, req.Catatan)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Status usulan pengadaan diperbarui", dto.ToRencanaPengadaanResponse(header))
}

// 🟢 POST /api/rencana-pengadaan/:id/validasi-detail - batch Penata Usaha Barang
func (ctrl *RencanaPengadaanController) ValidateDetails(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.ValidateDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	decisions := make(map[uuid.UUID]bool, len(req.Items))
	for _, it := range req.Items {
		decisions[it.DetailID] = it.Disetujui
	}

	header, err := ctrl.Service.ValidateDetails(actor, id, decisions, req.Catatan)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Validasi barang usulan tersimpan", dto.ToRencanaPengadaanResponse(header))
}

// 🟢 DELETE /api/rencana-pengadaan/:id
func (ctrl *RencanaPengadaanController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	if err := ctrl.Service.DeleteRencanaPengadaan(actor, id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Usulan pengadaan dihapus", nil)
}
