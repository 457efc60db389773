package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/items/dto"
	"simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/features/assets/items/service"
	helper "simaset_backend/internals/helpers"
	"simaset_backend/internals/workflows"
)

type BarangController struct {
	DB       *gorm.DB
	Service  *service.BarangService
	Validate *validator.Validate
}

func NewBarangController(db *gorm.DB) *BarangController {
	return &BarangController{
		DB:       db,
		Service:  service.NewBarangService(db),
		Validate: validator.New(),
	}
}

var barangSortColumns = map[string]string{
	"created_at": "barang_created_at",
	"kode":       "barang_kode",
	"nama":       "barang_nama",
	"status":     "barang_status",
}

// 🟢 GET /api/barang - list dengan pagination + filter status/kategori/lokasi
func (ctrl *BarangController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.BarangModel{})
	if status := c.Query("status"); status != "" {
		if !workflows.IsItemStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Status barang tidak dikenal: "+status)
		}
		q = q.Where("barang_status = ?", status)
	}
	if kategori := c.Query("kategori_id"); kategori != "" {
		q = q.Where("barang_kategori_id = ?", kategori)
	}
	if lokasi := c.Query("lokasi_id"); lokasi != "" {
		q = q.Where("barang_lokasi_id = ?", lokasi)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("barang_nama ILIKE ? OR barang_kode ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung barang")
	}

	order, err := p.SafeOrderClause(barangSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kolom sort tidak valid")
	}

	var list []model.BarangModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar barang")
	}

	resp := make([]dto.BarangResponse, len(list))
	for i := range list {
		resp[i] = dto.ToBarangResponse(&list[i])
	}
	return c.JSON(fiber.Map{
		"message": "Daftar barang berhasil diambil",
		"data":    resp,
		"meta":    helper.BuildMeta(total, p),
	})
}

// 🟢 GET /api/barang/menunggu-validasi - antrean validasi Pengurus Barang
func (ctrl *BarangController) GetPendingValidation(c *fiber.Ctx) error {
	var list []model.BarangModel
	if err := ctrl.DB.
		Where("barang_status = ?", workflows.StatusMenungguValidasi).
		Order("barang_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil antrean validasi")
	}

	resp := make([]dto.BarangResponse, len(list))
	for i := range list {
		resp[i] = dto.ToBarangResponse(&list[i])
	}
	return helper.Success(c, "Antrean validasi berhasil diambil", resp)
}

// 🟢 GET /api/barang/:id
func (ctrl *BarangController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var barang model.BarangModel
	if err := ctrl.DB.First(&barang, "barang_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Barang tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data barang")
	}
	return helper.Success(c, "Detail barang berhasil diambil", dto.ToBarangResponse(&barang))
}

// 🟢 POST /api/barang - pengusul membuat barang (Menunggu Validasi);
// Admin bypass langsung Tersedia.
func (ctrl *BarangController) Create(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.CreateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	status := workflows.StatusMenungguValidasi
	if actor.Role == constants.RoleAdmin {
		status = workflows.StatusTersedia
	}

	var tanggal *datatypes.Date
	if req.TanggalPerolehan != nil {
		t, err := time.Parse("2006-01-02", *req.TanggalPerolehan)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal_perolehan harus YYYY-MM-DD")
		}
		d := datatypes.Date(t)
		tanggal = &d
	}

	barang := model.BarangModel{
		BarangKode:             req.Kode,
		BarangNama:             req.Nama,
		BarangKategoriID:       req.KategoriID,
		BarangLokasiID:         req.LokasiID,
		BarangSpesifikasi:      req.Spesifikasi,
		BarangTanggalPerolehan: tanggal,
		BarangNilaiPerolehan:   req.NilaiPerolehan,
		BarangSumberDana:       req.SumberDana,
		BarangStatus:           status,
		BarangFotoURL:          req.FotoURL,
		BarangDiajukanOleh:     actor.ID,
	}
	if err := ctrl.DB.Create(&barang).Error; err != nil {
		return helper.FromAppError(c, workflows.Persistence(err))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Barang berhasil didaftarkan", dto.ToBarangResponse(&barang))
}

// 🟢 POST /api/barang/:id/validasi - Pengurus Barang menyetujui / menolak
func (ctrl *BarangController) ValidateBarang(c *fiber.Ctx) error {
	actor, err := helper.GetActorFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.ValidateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	barang, err := ctrl.Service.ValidateBarang(actor, id, req.Disetujui, req.Catatan)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	msg := "Barang disetujui dan tersedia"
	if !req.Disetujui {
		msg = "Barang ditolak"
	}
	return helper.Success(c, msg, dto.ToBarangResponse(barang))
}

// 🟢 PUT /api/barang/:id - edit langsung Admin, termasuk status administratif
func (ctrl *BarangController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.UpdateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Status != nil && !workflows.IsItemStatus(*req.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Status barang tidak dikenal: "+*req.Status)
	}

	var barang model.BarangModel
	if err := ctrl.DB.First(&barang, "barang_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Barang tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data barang")
	}

	if req.Nama != nil {
		barang.BarangNama = *req.Nama
	}
	if req.KategoriID != nil {
		barang.BarangKategoriID = *req.KategoriID
	}
	if req.LokasiID != nil {
		barang.BarangLokasiID = req.LokasiID
	}
	if req.Spesifikasi != nil {
		barang.BarangSpesifikasi = *req.Spesifikasi
	}
	if req.Status != nil {
		barang.BarangStatus = *req.Status
	}
	if req.FotoURL != nil {
		barang.BarangFotoURL = req.FotoURL
	}
	if req.QRCodeURL != nil {
		barang.BarangQRCodeURL = req.QRCodeURL
	}

	if err := ctrl.DB.Save(&barang).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui barang")
	}
	return helper.Success(c, "Barang berhasil diperbarui", dto.ToBarangResponse(&barang))
}

// 🟢 DELETE /api/barang/:id - hard delete Admin, di luar workflow
func (ctrl *BarangController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromAppError(c, err)
	}
	res := ctrl.DB.Delete(&model.BarangModel{}, "barang_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus barang")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Barang tidak ditemukan")
	}
	return helper.Success(c, "Barang berhasil dihapus permanen", nil)
}
