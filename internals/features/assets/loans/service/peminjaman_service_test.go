package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	itemModel "simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/features/assets/loans/model"
	"simaset_backend/internals/features/assets/loans/service"
	"simaset_backend/internals/testutil"
	"simaset_backend/internals/workflows"
)

func newLoan(barangID uuid.UUID) *model.PeminjamanModel {
	return &model.PeminjamanModel{
		PeminjamanBarangID:       barangID,
		PeminjamanTanggalMulai:   datatypes.Date(time.Now()),
		PeminjamanTanggalKembali: datatypes.Date(time.Now().AddDate(0, 0, 7)),
		PeminjamanKeperluan:      "rapat koordinasi bidang",
	}
}

func reloadBarang(t *testing.T, db *gorm.DB, id uuid.UUID) *itemModel.BarangModel {
	t.Helper()
	var b itemModel.BarangModel
	require.NoError(t, db.First(&b, "barang_id = ?", id).Error)
	return &b
}

func TestCreatePeminjaman_BarangStaysTersedia(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	assert.Equal(t, workflows.StatusDiajukan, loan.PeminjamanStatus)
	assert.Equal(t, peminjam.ID, loan.PeminjamanUserID)
	// pengajuan tidak mengunci barang
	assert.Equal(t, workflows.StatusTersedia, reloadBarang(t, db, barang.BarangID).BarangStatus)
}

func TestCreatePeminjaman_BarangNotAvailable(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	barang := testutil.SeedBarang(t, db, workflows.StatusDipinjam)

	err := svc.CreatePeminjaman(peminjam, newLoan(barang.BarangID))
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindValidation))
}

func TestTransitionPeminjaman_FullLifecycle(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	// approval mengunci barang dan mencatat pemegang
	out, err := svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDivalidasiPengurus, out.PeminjamanStatus)

	b := reloadBarang(t, db, barang.BarangID)
	assert.Equal(t, workflows.StatusDipinjam, b.BarangStatus)
	require.NotNil(t, b.BarangPemegangID)
	assert.Equal(t, peminjam.ID, *b.BarangPemegangID)

	// pengembalian melepas barang dan mengisi tanggal aktual kembali
	out, err = svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusSelesai, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusSelesai, out.PeminjamanStatus)
	require.NotNil(t, out.PeminjamanTanggalAktualKembali)

	b = reloadBarang(t, db, barang.BarangID)
	assert.Equal(t, workflows.StatusTersedia, b.BarangStatus)
	assert.Nil(t, b.BarangPemegangID)

	assert.EqualValues(t, 2, testutil.CountLogs(t, db, workflows.KindPeminjaman, loan.PeminjamanID))
}

// Dua permohonan atas barang yang sama boleh sama-sama Diajukan; yang disetujui
// duluan yang mendapat barang, approval kedua gagal sebagai konflik.
func TestTransitionPeminjaman_FirstApprovalWins(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjamA := testutil.SeedUser(t, db, constants.RolePPK)
	peminjamB := testutil.SeedUser(t, db, constants.RoleKepalaBidang)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loanA := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjamA, loanA))
	loanB := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjamB, loanB))

	_, err := svc.TransitionPeminjaman(pengurus, loanA.PeminjamanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)

	_, err = svc.TransitionPeminjaman(pengurus, loanB.PeminjamanID, workflows.StatusDivalidasiPengurus, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindConflict))

	// permohonan kedua tidak ikut berubah status
	var after model.PeminjamanModel
	require.NoError(t, db.First(&after, "peminjaman_id = ?", loanB.PeminjamanID).Error)
	assert.Equal(t, workflows.StatusDiajukan, after.PeminjamanStatus)
	assert.EqualValues(t, 0, testutil.CountLogs(t, db, workflows.KindPeminjaman, loanB.PeminjamanID))
}

func TestTransitionPeminjaman_RejectStoresNote(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	catatan := "barang dialokasikan untuk kegiatan lain"
	out, err := svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusDitolak, &catatan)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDitolak, out.PeminjamanStatus)
	require.NotNil(t, out.PeminjamanCatatanPenolakan)
	assert.Equal(t, catatan, *out.PeminjamanCatatanPenolakan)

	// barang tidak tersentuh
	assert.Equal(t, workflows.StatusTersedia, reloadBarang(t, db, barang.BarangID).BarangStatus)
}

func TestTransitionPeminjaman_RejectWithoutNoteAllowed(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	out, err := svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusDitolak, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDitolak, out.PeminjamanStatus)
}

func TestTransitionPeminjaman_SkipChainRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	_, err := svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusSelesai, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))
}

func TestDeletePeminjaman_Rules(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewPeminjamanService(db)
	peminjam := testutil.SeedUser(t, db, constants.RolePPK)
	lain := testutil.SeedUser(t, db, constants.RoleKepalaBidang)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	loan := newLoan(barang.BarangID)
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan))

	// bukan pemohonnya
	err := svc.DeletePeminjaman(lain, loan.PeminjamanID)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindForbidden))

	// sudah diproses
	_, err = svc.TransitionPeminjaman(pengurus, loan.PeminjamanID, workflows.StatusDivalidasiPengurus, nil)
	require.NoError(t, err)
	err = svc.DeletePeminjaman(peminjam, loan.PeminjamanID)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))

	// masih Diajukan oleh pemohon sendiri
	loan2 := newLoan(barang.BarangID)
	barang2 := testutil.SeedBarang(t, db, workflows.StatusTersedia)
	loan2.PeminjamanBarangID = barang2.BarangID
	require.NoError(t, svc.CreatePeminjaman(peminjam, loan2))
	require.NoError(t, svc.DeletePeminjaman(peminjam, loan2.PeminjamanID))

	var n int64
	require.NoError(t, db.Model(&model.PeminjamanModel{}).
		Where("peminjaman_id = ?", loan2.PeminjamanID).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}
