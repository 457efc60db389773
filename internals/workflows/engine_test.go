package workflows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"simaset_backend/internals/constants"
	itemModel "simaset_backend/internals/features/assets/items/model"
	"simaset_backend/internals/testutil"
	"simaset_backend/internals/workflows"
)

func barangTarget(b *itemModel.BarangModel) workflows.Target {
	return workflows.Target{
		Model:        &itemModel.BarangModel{},
		IDColumn:     "barang_id",
		StatusColumn: "barang_status",
		ID:           b.BarangID,
		Current:      b.BarangStatus,
	}
}

func TestApply_SwapsStatusAndAppendsOneLog(t *testing.T) {
	db := testutil.OpenTestDB(t)
	actor := testutil.NewActor(constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	err := db.Transaction(func(tx *gorm.DB) error {
		return workflows.Apply(tx, workflows.ItemValidationTable, actor,
			barangTarget(barang), workflows.StatusTersedia, nil, nil)
	})
	require.NoError(t, err)

	var after itemModel.BarangModel
	require.NoError(t, db.First(&after, "barang_id = ?", barang.BarangID).Error)
	assert.Equal(t, workflows.StatusTersedia, after.BarangStatus)

	require.EqualValues(t, 1, testutil.CountLogs(t, db, workflows.KindBarang, barang.BarangID))
	row := testutil.LastLog(t, db, workflows.KindBarang, barang.BarangID)
	assert.Equal(t, workflows.StatusMenungguValidasi, row.LogValidasiStatusSebelum)
	assert.Equal(t, workflows.StatusTersedia, row.LogValidasiStatusSesudah)
	assert.Equal(t, actor.ID, row.LogValidasiUserID)
	assert.Nil(t, row.LogValidasiCatatan)
}

func TestApply_GuardFailureLeavesNoTrace(t *testing.T) {
	db := testutil.OpenTestDB(t)
	actor := testutil.NewActor(constants.RolePPK)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	err := db.Transaction(func(tx *gorm.DB) error {
		return workflows.Apply(tx, workflows.ItemValidationTable, actor,
			barangTarget(barang), workflows.StatusTersedia, nil, nil)
	})
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindForbidden))

	var after itemModel.BarangModel
	require.NoError(t, db.First(&after, "barang_id = ?", barang.BarangID).Error)
	assert.Equal(t, workflows.StatusMenungguValidasi, after.BarangStatus)
	assert.EqualValues(t, 0, testutil.CountLogs(t, db, workflows.KindBarang, barang.BarangID))
}

func TestApply_SideEffectFailureRollsBackEverything(t *testing.T) {
	db := testutil.OpenTestDB(t)
	actor := testutil.NewActor(constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	boom := workflows.Validation("efek samping gagal")
	err := db.Transaction(func(tx *gorm.DB) error {
		return workflows.Apply(tx, workflows.ItemValidationTable, actor,
			barangTarget(barang), workflows.StatusTersedia, nil,
			func(tx *gorm.DB) error { return boom })
	})
	require.Error(t, err)

	var after itemModel.BarangModel
	require.NoError(t, db.First(&after, "barang_id = ?", barang.BarangID).Error)
	assert.Equal(t, workflows.StatusMenungguValidasi, after.BarangStatus,
		"status harus kembali seperti semula setelah rollback")
	assert.EqualValues(t, 0, testutil.CountLogs(t, db, workflows.KindBarang, barang.BarangID))
}

func TestSwapStatus_StaleCurrentIsConflict(t *testing.T) {
	db := testutil.OpenTestDB(t)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	// target dibuat saat status masih Menunggu Validasi (pembaca lama)
	stale := workflows.Target{
		Model:        &itemModel.BarangModel{},
		IDColumn:     "barang_id",
		StatusColumn: "barang_status",
		ID:           barang.BarangID,
		Current:      workflows.StatusMenungguValidasi,
	}
	err := workflows.SwapStatus(db, stale, workflows.StatusDitolak)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindConflict))

	var after itemModel.BarangModel
	require.NoError(t, db.First(&after, "barang_id = ?", barang.BarangID).Error)
	assert.Equal(t, workflows.StatusTersedia, after.BarangStatus)
}

func TestAppendLog_StoresNoteVerbatim(t *testing.T) {
	db := testutil.OpenTestDB(t)
	actor := testutil.NewActor(constants.RoleKepalaDinas)
	barang := testutil.SeedBarang(t, db, workflows.StatusDiajukan)

	catatan := "anggaran belum tersedia"
	require.NoError(t, workflows.AppendLog(db, workflows.KindRencanaPengadaan,
		barang.BarangID, actor.ID, workflows.StatusMenungguPersetujuan, workflows.StatusDitolak, &catatan))

	row := testutil.LastLog(t, db, workflows.KindRencanaPengadaan, barang.BarangID)
	require.NotNil(t, row.LogValidasiCatatan)
	assert.Equal(t, catatan, *row.LogValidasiCatatan)
}
