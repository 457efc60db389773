package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaset_backend/internals/constants"
	"simaset_backend/internals/features/assets/items/service"
	"simaset_backend/internals/testutil"
	"simaset_backend/internals/workflows"
)

func TestValidateBarang_Approve(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewBarangService(db)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	out, err := svc.ValidateBarang(pengurus, barang.BarangID, true, nil)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusTersedia, out.BarangStatus)

	row := testutil.LastLog(t, db, workflows.KindBarang, barang.BarangID)
	assert.Equal(t, workflows.StatusMenungguValidasi, row.LogValidasiStatusSebelum)
	assert.Equal(t, workflows.StatusTersedia, row.LogValidasiStatusSesudah)
	assert.Equal(t, pengurus.ID, row.LogValidasiUserID)
}

func TestValidateBarang_RejectWithNote(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewBarangService(db)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	catatan := "data perolehan tidak lengkap"
	out, err := svc.ValidateBarang(pengurus, barang.BarangID, false, &catatan)
	require.NoError(t, err)
	assert.Equal(t, workflows.StatusDitolak, out.BarangStatus)

	row := testutil.LastLog(t, db, workflows.KindBarang, barang.BarangID)
	require.NotNil(t, row.LogValidasiCatatan)
	assert.Equal(t, catatan, *row.LogValidasiCatatan)
}

func TestValidateBarang_WrongRoleForbidden(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewBarangService(db)
	ppk := testutil.SeedUser(t, db, constants.RolePPK)
	barang := testutil.SeedBarang(t, db, workflows.StatusMenungguValidasi)

	_, err := svc.ValidateBarang(ppk, barang.BarangID, true, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindForbidden))
	assert.EqualValues(t, 0, testutil.CountLogs(t, db, workflows.KindBarang, barang.BarangID))
}

func TestValidateBarang_AlreadyValidated(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewBarangService(db)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)
	barang := testutil.SeedBarang(t, db, workflows.StatusTersedia)

	_, err := svc.ValidateBarang(pengurus, barang.BarangID, true, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindInvalidTransition))
}

func TestValidateBarang_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := service.NewBarangService(db)
	pengurus := testutil.SeedUser(t, db, constants.RolePengurusBarang)

	_, err := svc.ValidateBarang(pengurus, uuid.New(), true, nil)
	require.Error(t, err)
	assert.True(t, workflows.IsKind(err, workflows.ErrKindNotFound))
}
