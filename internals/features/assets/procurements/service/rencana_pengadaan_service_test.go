package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/procurements/model"
	"simaset_backend/internals/features/assets/procurements/service"
	"simaset_backend/internals/testutil"
	"simaset_backend/internals/workflows"
)

func newDetails(n int) []model.RencanaPengadaanDetailModel {
	out := make([]model.RencanaPengadaanDetailModel, n)
	for i := range out {
		out[i] = model.RencanaPengadaanDetailModel{
			RencanaPengadaanDetailNamaBarang:  fmt.Sprintf("Printer %d", i+1),
			RencanaPengadaanDetailJumlah:      2,
			RencanaPengadaanDetailSatuan:      "unit",
			RencanaPengadaanDetailHargaSatuan: 3_500_000,
		}
	}
	return out
}

func seedUsulan(t *testing.T, db *gorm.DB, svc *service.RencanaPengadaanService, n int) (*model.RencanaPengadaanModel, workflows.Actor) {
	t.Helper()
	pembuat := testutil.SeedUser(t, db, constants.RolePPK)
	header := &model.RencanaPengadaanModel{RencanaPengadaanKeterangan: "kebutuhan bidang aset"}
	require.NoError(t, svc.CreateRencanaPengadaan(pembuat, header, newDetails(n)))
	return header, pembuat
}

func TestCreateRencanaPengadaan_NomorFormat(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)

	h1, _ := seedUsulan(t, db, svc, 2)
	h2, _ := seedUsulan(t, db, svc, 1)

	prefix := "RP-" + time.Now().Format("200601") + "-"
	assert.Equal(t, prefix+"0001", h1.RencanaPengadaanNomor)
	assert.Equal(t, prefix+"0002", h2.RencanaPengadaanNomor)
	assert.Equal(t, workflows.StatusDiajukan, h1.RencanaPengadaanStatus)
	assert.Len(t, h1.Details, 2)
	for _, d := range h1.Details {
		assert.False(t, d.RencanaPengadaanDetailDisetujui)
		assert.EqualValues(t, 7_000_000, d.TotalHarga())
	}
}

func TestCreateRencanaPengadaan_RequiresDetails(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	pembuat := testutil.SeedUser(t, db, constants.RolePPK)

	err := svc.CreateRencanaPengadaan(pembuat, &model.RencanaPengadaanModel{}, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))
}

// Rantai lengkap: Diajukan → Divalidasi Pengurus Barang → Divalidasi
// Penatausahaan → (validasi detail) Menunggu Persetujuan → Disetujui Kepala
// Dinas → Selesai, masing-masing oleh role yang berwenang.
func TestRencanaPengadaan_FullChain(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, _ := seedUsulan(t, db, svc, 2)

	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	penata := testutil.SeedUser(t, db, constants.RolePenataUsahaBarang)
	kadis := testutil.SeedUser(t, db, constants.RoleKepalaDinas)
	admin := testutil.SeedUser(t, db, constants.RoleAdmin)

	out, err := svc.TransitionRencanaPengadaan(pengurus, header.RencanaPengadaanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDivalidasiPengurus, out.RencanaPengadaanStatus)

	out, err = svc.TransitionRencanaPengadaan(penata, header.RencanaPengadaanID, workflows.StatusDivalidasiPenatausahaan, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDivalidasiPenatausahaan, out.RencanaPengadaanStatus)

	decisions := map[uuid.UUID]bool{
		header.Details[0].RencanaPengadaanDetailID: true,
		header.Details[1].RencanaPengadaanDetailID: false,
	}
	out, err = svc.ValidateDetails(penata, header.RencanaPengadaanID, decisions, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusMenungguPersetujuan, out.RencanaPengadaanStatus)

	var detail model.RencanaPengadaanDetailModel
	require.NoError(t, db.First(&detail,
		"rencana_pengadaan_detail_id = ?", header.Details[0].RencanaPengadaanDetailID).Error)
	assert.True(t, detail.RencanaPengadaanDetailDisetujui)

	out, err = svc.TransitionRencanaPengadaan(kadis, header.RencanaPengadaanID, workflows.StatusDisetujuiKepalaDinas, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDisetujuiKepalaDinas, out.RencanaPengadaanStatus)

	out, err = svc.TransitionRencanaPengadaan(admin, header.RencanaPengadaanID, workflows.StatusSelesai, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusSelesai, out.RencanaPengadaanStatus)

	// 5 langkah = 5 baris ledger, validasi batch hanya satu baris
	assert.EqualValues(t, 5, testutil.CountLogs(t, db, workflows.KindRencanaPengadaan, header.RencanaPengadaanID))
}

func TestRencanaPengadaan_SkipStageRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, _ := seedUsulan(t, db, svc, 1)
	kadis := testutil.SeedUser(t, db, constants.RoleKepalaDinas)

	_, err := svc.TransitionRencanaPengadaan(kadis, header.RencanaPengadaanID, workflows.StatusDisetujuiKepalaDinas, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))
}

func TestRencanaPengadaan_RejectRequiresNote(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, _ := seedUsulan(t, db, svc, 1)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)

	_, err := svc.TransitionRencanaPengadaan(pengurus, header.RencanaPengadaanID, workflows.StatusDitolak, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))

	catatan := "anggaran tidak mencukupi"
	out, err := svc.TransitionRencanaPengadaan(pengurus, header.RencanaPengadaanID, workflows.StatusDitolak, &catatan)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDitolak, out.RencanaPengadaanStatus)
	require.NotNil(t, out.RencanaPengadaanCatatanPenolakan)
	assert.Equal(t, catatan, *out.RencanaPengadaanCatatanPenolakan)
}

// Usulan tetap naik ke Kepala Dinas walau semua barisnya ditolak; keputusan
// akhir ada di tahap persetujuan, bukan di validasi baris.
func TestValidateDetails_AllRejectedStillAdvances(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, _ := seedUsulan(t, db, svc, 2)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	penata := testutil.SeedUser(t, db, constants.RolePenataUsahaBarang)

	_, err := svc.TransitionRencanaPengadaan(pengurus, header.RencanaPengadaanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	_, err = svc.TransitionRencanaPengadaan(penata, header.RencanaPengadaanID, workflows.StatusDivalidasiPenatausahaan, nil)
	require.NoError(t, err)

	decisions := map[uuid.UUID]bool{
		header.Details[0].RencanaPengadaanDetailID: false,
		header.Details[1].RencanaPengadaanDetailID: false,
	}
	out, err := svc.ValidateDetails(penata, header.RencanaPengadaanID, decisions, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusMenungguPersetujuan, out.RencanaPengadaanStatus)
}

func TestValidateDetails_Preconditions(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, _ := seedUsulan(t, db, svc, 1)
	penata := testutil.SeedUser(t, db, constants.RolePenataUsahaBarang)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)

	// status masih Diajukan
	_, err := svc.ValidateDetails(penata, header.RencanaPengadaanID,
		map[uuid.UUID]bool{header.Details[0].RencanaPengadaanDetailID: true}, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))

	_, err = svc.TransitionRencanaPengadaan(pengurus, header.RencanaPengadaanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	_, err = svc.TransitionRencanaPengadaan(penata, header.RencanaPengadaanID, workflows.StatusDivalidasiPenatausahaan, nil)
	require.NoError(t, err)

	// role salah
	_, err = svc.ValidateDetails(pengurus, header.RencanaPengadaanID,
		map[uuid.UUID]bool{header.Details[0].RencanaPengadaanDetailID: true}, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindForbidden))

	// keputusan menunjuk detail usulan lain
	_, err = svc.ValidateDetails(penata, header.RencanaPengadaanID,
		map[uuid.UUID]bool{uuid.New(): true}, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))
}

func TestDeleteRencanaPengadaan_Rules(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewRencanaPengadaanService(db)
	header, pembuat := seedUsulan(t, db, svc, 2)
	lain := testutil.SeedUser(t, db, constants.RoleKepalaBidang)

	err := svc.DeleteRencanaPengadaan(lain, header.RencanaPengadaanID)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindForbidden))

	require.NoError(t, svc.DeleteRencanaPengadaan(pembuat, header.RencanaPengadaanID))

	var n int64
	require.NoError(t, db.Model(&model.RencanaPengadaanDetailModel{}).
		Where("rencana_pengadaan_detail_header_id = ?", header.RencanaPengadaanID).Count(&n).Error)
	assert.EqualValues(t, 0, n, "detail ikut terhapus bersama header")
}
