package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simaset_backend/internals/features/master/dto"
	"simaset_backend/internals/features/master/model"
	helper "simaset_backend/internals/helpers"
)

type MasterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMasterController(db *gorm.DB) *MasterController {
	return &MasterController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/master/kategori
func (ctrl *MasterController) GetAllKategori(c *fiber.Ctx) error {
	var list []model.KategoriBarangModel
	if err := ctrl.DB.Order("kategori_barang_kode ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kategori")
	}
	return helper.Success(c, "Daftar kategori berhasil diambil", list)
}

// 🟢 POST /api/master/kategori
func (ctrl *MasterController) CreateKategori(c *fiber.Ctx) error {
	var req dto.KategoriBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	kategori := model.KategoriBarangModel{
		KategoriBarangKode: req.Kode,
		KategoriBarangNama: req.Nama,
	}
	if err := ctrl.DB.Create(&kategori).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "Kode kategori sudah digunakan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kategori berhasil dibuat", kategori)
}

// 🟢 DELETE /api/master/kategori/:id
func (ctrl *MasterController) DeleteKategori(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}
	res := ctrl.DB.Delete(&model.KategoriBarangModel{}, "kategori_barang_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.Success(c, "Kategori berhasil dihapus", nil)
}

// 🟢 GET /api/master/lokasi
func (ctrl *MasterController) GetAllLokasi(c *fiber.Ctx) error {
	var list []model.LokasiModel
	if err := ctrl.DB.Order("lokasi_nama ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar lokasi")
	}
	return helper.Success(c, "Daftar lokasi berhasil diambil", list)
}

// 🟢 POST /api/master/lokasi
func (ctrl *MasterController) CreateLokasi(c *fiber.Ctx) error {
	var req dto.LokasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	lokasi := model.LokasiModel{
		LokasiNama:       req.Nama,
		LokasiGedung:     req.Gedung,
		LokasiKeterangan: req.Keterangan,
	}
	if err := ctrl.DB.Create(&lokasi).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat lokasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lokasi berhasil dibuat", lokasi)
}

// 🟢 PUT /api/master/lokasi/:id
func (ctrl *MasterController) UpdateLokasi(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.LokasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lokasi model.LokasiModel
	if err := ctrl.DB.First(&lokasi, "lokasi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data lokasi")
	}

	lokasi.LokasiNama = req.Nama
	lokasi.LokasiGedung = req.Gedung
	lokasi.LokasiKeterangan = req.Keterangan
	if err := ctrl.DB.Save(&lokasi).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui lokasi")
	}
	return helper.Success(c, "Lokasi berhasil diperbarui", lokasi)
}
