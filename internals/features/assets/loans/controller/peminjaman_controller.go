package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"simaset_backend/internals/features/assets/loans/dto"
	"simaset_backend/internals/features/assets/loans/model"
	"simaset_backend/internals/features/assets/loans/service"
	helper "simaset_backend/internals/helpers"
)

type PeminjamanController struct {
	DB       *gorm.DB
	Service  *service.PeminjamanService
	Validate *validator.Validate
}

func NewPeminjamanController(db *gorm.DB) *PeminjamanController {
	return &PeminjamanController{
		DB:       db,
		Service:  service.NewPeminjamanService(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/peminjaman - semua role boleh mengajukan
func (ctrl *PeminjamanController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.CreatePeminjamanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mulai, err := time.Parse("2006-01-02", req.TanggalMulai)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal_mulai harus YYYY-MM-DD")
	}
	kembali, err := time.Parse("2006-01-02", req.TanggalKembali)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal_kembali harus YYYY-MM-DD")
	}
	if kembali.Before(mulai) {
		return helper.Error(c, fiber.StatusBadRequest, "tanggal_kembali tidak boleh sebelum tanggal_mulai")
	}

	loan := model.PeminjamanModel{
		PeminjamanBarangID:          req.BarangID,
		PeminjamanTanggalMulai:      datatypes.Date(mulai),
		PeminjamanTanggalKembali:    datatypes.Date(kembali),
		PeminjamanKeperluan:         req.Keperluan,
		PeminjamanNamaPihakKedua:    req.NamaPihakKedua,
		PeminjamanJabatanPihakKedua: req.JabatanPihakKedua,
	}
	if err := ctrl.Service.CreatePeminjaman(actor, &loan); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Permohonan peminjaman diajukan", dto.ToPeminjamanResponse(&loan))
}

// 🟢 GET /api/peminjaman/saya - permohonan milik user login
func (ctrl *PeminjamanController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var list []model.PeminjamanModel
	if err := ctrl.DB.
		Where("peminjaman_user_id = ?", userID).
		Order("peminjaman_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar peminjaman")
	}

	resp := make([]dto.PeminjamanResponse, len(list))
	for i := range list {
		resp[i] = dto.ToPeminjamanResponse(&list[i])
	}
	return helper.Success(c, "Daftar peminjaman Anda berhasil diambil", resp)
}

// 🟢 GET /api/peminjaman - antrean untuk Pengurus Barang (filter status opsional)
func (ctrl *PeminjamanController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.PeminjamanModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("peminjaman_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung peminjaman")
	}

	var list []model.PeminjamanModel
	if err := q.Order("peminjaman_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar peminjaman")
	}

	resp := make([]dto.PeminjamanResponse, len(list))
	for i := range list {
		resp[i] = dto.ToPeminjamanResponse(&list[i])
	}
	return c.JSON(fiber.Map{
		"message": "Daftar peminjaman berhasil diambil",
		"data":    resp,
		"meta":    helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/peminjaman/:id
func (ctrl *PeminjamanController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var loan model.PeminjamanModel
	if err := ctrl.DB.First(&loan, "peminjaman_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Peminjaman tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data peminjaman")
	}
	return helper.Success(c, "Detail peminjaman berhasil diambil", dto.ToPeminjamanResponse(&loan))
}

// 🟢 GET /api/peminjaman/:id/surat - proyeksi data surat perjanjian
func (ctrl *PeminjamanController) GetSuratProjection(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var proj dto.SuratPeminjamanProjection
	err = ctrl.DB.Table("peminjaman").
		Select(`peminjaman.peminjaman_id,
			users.user_name AS nama_peminjam,
			users.user_nip AS nip_peminjam,
			barang.barang_nama AS nama_barang,
			barang.barang_kode AS kode_barang,
			barang.barang_spesifikasi AS spesifikasi,
			peminjaman.peminjaman_tanggal_mulai AS tanggal_mulai,
			peminjaman.peminjaman_tanggal_kembali AS tanggal_kembali,
			peminjaman.peminjaman_keperluan AS keperluan,
			peminjaman.peminjaman_status AS status,
			peminjaman.peminjaman_nama_pihak_kedua AS nama_pihak_kedua,
			peminjaman.peminjaman_jabatan_pihak_kedua AS jabatan_pihak_kedua`).
		Joins("JOIN users ON users.user_id = peminjaman.peminjaman_user_id").
		Joins("JOIN barang ON barang.barang_id = peminjaman.peminjaman_barang_id").
		Where("peminjaman.peminjaman_id = ?", id).
		Take(&proj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Peminjaman tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
	}
	return helper.Success(c, "Data surat perjanjian berhasil diambil", proj)
}

// 🟢 PATCH /api/peminjaman/:id/status - transisi oleh Pengurus Barang
func (ctrl *PeminjamanController) Transition(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.TransitionPeminjamanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loan, err := ctrl.Service.TransitionPeminjaman(actor, id, req.Status, req.Catatan)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Status peminjaman diperbarui", dto.ToPeminjamanResponse(loan))
}

// 🟢 DELETE /api/peminjaman/:id - pemohon menarik permohonannya
func (ctrl *PeminjamanController) Delete(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	if err := ctrl.Service.DeletePeminjaman(actor, id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "Permohonan peminjaman dihapus", nil)
}
