package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/disposals/model"
	"simaset_backend/internals/features/assets/disposals/service"
	itemModel "simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/testutil"
	"simaset_backend/internals/workflows"
)

type fixture struct {
	db       *gorm.DB
	svc      *service.PenghapusanService
	pengurus workflows.Actor
	penata   workflows.Actor
	kadis    workflows.Actor
	barang   *itemModel.BarangModel
	proposal *model.PenghapusanModel
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenTestDB(t)
	f := &fixture{
		db:       db,
		svc:      service.NewPenghapusanService(db),
		pengurus: testutil.SeedUser(t, db, constants.RolePengurusBarang),
		penata:   testutil.SeedUser(t, db, constants.RolePenataUsahaBarang),
		kadis:    testutil.SeedUser(t, db, constants.RoleKepalaDinas),
		barang:   testutil.SeedBarang(t, db, workflows.StatusRusakBerat),
	}
	f.proposal = &model.PenghapusanModel{
		PenghapusanBarangID: f.barang.BarangID,
		PenghapusanAlasan:   "rusak berat, biaya perbaikan melebihi nilai barang",
	}
	require.NoError(t, f.svc.CreatePenghapusan(f.pengurus, f.proposal))
	return f
}

func (f *fixture) approveChain(t *testing.T) {
	t.Helper()
	_, err := f.svc.TransitionPenghapusan(f.pengurus, f.proposal.PenghapusanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	_, err = f.svc.TransitionPenghapusan(f.penata, f.proposal.PenghapusanID, workflows.StatusDivalidasiPenatausahaan, nil)
	require.NoError(t, err)
	_, err = f.svc.TransitionPenghapusan(f.kadis, f.proposal.PenghapusanID, workflows.StatusDisetujuiKepalaDinas, nil)
	require.NoError(t, err)
}

func (f *fixture) reloadBarang(t *testing.T) *itemModel.BarangModel {
	t.Helper()
	var b itemModel.BarangModel
	require.NoError(t, f.db.First(&b, "barang_id = ?", f.barang.BarangID).Error)
	return &b
}

func TestCreatePenghapusan_RefusesLoanedOrInactive(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPenghapusanService(db)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)

	dipinjam := testutil.SeedBarang(t, db, workflows.StatusDipinjam)
	err := svc.CreatePenghapusan(pengurus, &model.PenghapusanModel{
		PenghapusanBarangID: dipinjam.BarangID,
		PenghapusanAlasan:   "rusak",
	})
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))

	nonaktif := testutil.SeedBarang(t, db, workflows.StatusTidakAktif)
	err = svc.CreatePenghapusan(pengurus, &model.PenghapusanModel{
		PenghapusanBarangID: nonaktif.BarangID,
		PenghapusanAlasan:   "rusak",
	})
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))
}

func TestTransitionPenghapusan_SelesaiOnlyViaUpload(t *testing.T) {
	f := setup(t)
	f.approveChain(t)

	_, err := f.svc.TransitionPenghapusan(f.pengurus, f.proposal.PenghapusanID, workflows.StatusSelesai, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))
}

func TestTransitionPenghapusan_RejectRequiresNote(t *testing.T) {
	f := setup(t)

	_, err := f.svc.TransitionPenghapusan(f.pengurus, f.proposal.PenghapusanID, workflows.StatusDitolak, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))

	catatan := "barang masih layak diperbaiki"
	out, err := f.svc.TransitionPenghapusan(f.pengurus, f.proposal.PenghapusanID, workflows.StatusDitolak, &catatan)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDitolak, out.PenghapusanStatus)
	require.NotNil(t, out.PenghapusanCatatanPenolakan)
	assert.Equal(t, catatan, *out.PenghapusanCatatanPenolakan)
}

// Upload dokumen menutup usulan, menonaktifkan barang, dan menulis satu baris
// ledger, semuanya dalam satu transaksi.
func TestUploadDokumen_CompletesDisposal(t *testing.T) {
	f := setup(t)
	f.approveChain(t)

	out, err := f.svc.UploadDokumen(f.pengurus, f.proposal.PenghapusanID, "https://arsip/ba-penghapusan-001.pdf")
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusSelesai, out.PenghapusanStatus)
	require.NotNil(t, out.PenghapusanDokumenURL)

	assert.Equal(t, workflows.StatusTidakAktif, f.reloadBarang(t).BarangStatus)

	row := testutil.LastLog(t, f.db, workflows.KindPenghapusan, f.proposal.PenghapusanID)
	assert.Equal(t, workflows.StatusDisetujuiKepalaDinas, row.LogValidasiStatusSebelum)
	assert.Equal(t, workflows.StatusSelesai, row.LogValidasiStatusSesudah)
}

func TestUploadDokumen_Preconditions(t *testing.T) {
	f := setup(t)

	_, err := f.svc.UploadDokumen(f.pengurus, f.proposal.PenghapusanID, "")
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))

	// belum disetujui Kepala Dinas
	_, err = f.svc.UploadDokumen(f.pengurus, f.proposal.PenghapusanID, "https://arsip/ba.pdf")
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))

	_, err = f.svc.UploadDokumen(f.pengurus, uuid.New(), "https://arsip/ba.pdf")
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindNotFound))
}

// Pembatalan dokumen adalah kompensasi: usulan kembali ke Divalidasi Pengurus
// Barang, barang kembali Tersedia, referensi dokumen dihapus, dan ada baris
// ledger baru (baris lama tidak disentuh).
func TestRevertDokumen_Compensates(t *testing.T) {
	f := setup(t)
	f.approveChain(t)

	_, err := f.svc.UploadDokumen(f.pengurus, f.proposal.PenghapusanID, "https://arsip/ba.pdf")
	require.NoError(t, err)
	before := testutil.CountLogs(t, f.db, workflows.KindPenghapusan, f.proposal.PenghapusanID)

	out, err := f.svc.RevertDokumen(f.pengurus, f.proposal.PenghapusanID)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDivalidasiPengurus, out.PenghapusanStatus)
	assert.Nil(t, out.PenghapusanDokumenURL)

	assert.Equal(t, workflows.StatusTersedia, f.reloadBarang(t).BarangStatus)
	assert.EqualValues(t, before+1, testutil.CountLogs(t, f.db, workflows.KindPenghapusan, f.proposal.PenghapusanID))

	row := testutil.LastLog(t, f.db, workflows.KindPenghapusan, f.proposal.PenghapusanID)
	assert.Equal(t, workflows.StatusSelesai, row.LogValidasiStatusSebelum)
	assert.Equal(t, workflows.StatusDivalidasiPengurus, row.LogValidasiStatusSesudah)
}

func TestRevertDokumen_NothingToRevert(t *testing.T) {
	f := setup(t)

	_, err := f.svc.RevertDokumen(f.pengurus, f.proposal.PenghapusanID)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))
}
