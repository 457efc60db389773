package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaset_backend/internals/constants"
)

func note(s string) *string { return &s }

func allStatuses() []string {
	return []string{
		StatusMenungguValidasi,
		StatusTersedia,
		StatusDipinjam,
		StatusDalamPerbaikan,
		StatusRusakBerat,
		StatusTidakAktif,
		StatusDiajukan,
		StatusDivalidasiPengurus,
		StatusDivalidasiPenatausahaan,
		StatusMenungguPersetujuan,
		StatusDisetujuiKepalaDinas,
		StatusSelesai,
		StatusDitolak,
	}
}

// Setiap pasangan (from, to) yang tidak ada di tabel harus ditolak sebagai
// InvalidTransition, apa pun role pemanggil. Tidak ada jalan pintas melompati
// tahap rantai.
func TestGuard_RejectsEveryPairOutsideTable(t *testing.T) {
	tables := []Table{ItemValidationTable, LoanTable, ProcurementTable, DisposalTable}

	for _, table := range tables {
		t.Run(string(table.Kind), func(t *testing.T) {
			for _, from := range allStatuses() {
				for _, to := range allStatuses() {
					inTable := table.ResponsibleRole(from, to) != ""
					for _, role := range constants.AllRoles {
						err := table.Guard(from, to, role, note("catatan"))
						if table.isTerminal(from) {
							assert.True(t, IsKind(err, ErrKindInvalidTransition),
								"dari terminal %q harus InvalidTransition", from)
							continue
						}
						if !inTable {
							assert.True(t, IsKind(err, ErrKindInvalidTransition),
								"%q → %q tidak ada di tabel, role %s", from, to, role)
							continue
						}
						if role != table.ResponsibleRole(from, to) {
							assert.True(t, IsKind(err, ErrKindForbidden),
								"%q → %q oleh %s harus Forbidden", from, to, role)
						} else {
							assert.NoError(t, err, "%q → %q oleh %s", from, to, role)
						}
					}
				}
			}
		})
	}
}

func TestGuard_TerminalBeatsUnknownPair(t *testing.T) {
	// Dari status terminal, bahkan pasangan yang ada di tabel pun ditolak.
	err := ProcurementTable.Guard(StatusSelesai, StatusDitolak, constants.RoleAdmin, note("x"))
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindInvalidTransition))
}

func TestGuard_GraphCheckedBeforeRole(t *testing.T) {
	// Pasangan ilegal dengan role sembarang: harus InvalidTransition, bukan
	// Forbidden, supaya status stale tidak disalahartikan sebagai soal izin.
	err := LoanTable.Guard(StatusDiajukan, StatusSelesai, constants.RolePPK, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindInvalidTransition))
}

func TestGuard_NoteRequiredOnRejection(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		from  string
		role  string
	}{
		{"pengadaan", ProcurementTable, StatusDiajukan, constants.RolePengurusBarang},
		{"penghapusan", DisposalTable, StatusDivalidasiPengurus, constants.RolePenataUsahaBarang},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Guard(tt.from, StatusDitolak, tt.role, nil)
			assert.True(t, IsKind(err, ErrKindValidation), "catatan nil")

			empty := ""
			err = tt.table.Guard(tt.from, StatusDitolak, tt.role, &empty)
			assert.True(t, IsKind(err, ErrKindValidation), "catatan kosong")

			err = tt.table.Guard(tt.from, StatusDitolak, tt.role, note("spesifikasi tidak sesuai"))
			assert.NoError(t, err)
		})
	}
}

func TestGuard_LoanRejectionNoteOptional(t *testing.T) {
	err := LoanTable.Guard(StatusDiajukan, StatusDitolak, constants.RolePengurusBarang, nil)
	assert.NoError(t, err)
}

func TestNextStates(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{StatusDivalidasiPengurus, StatusDitolak},
		ProcurementTable.NextStates(StatusDiajukan))
	assert.Empty(t, ProcurementTable.NextStates(StatusSelesai))
}

func TestResponsibleRole_ChainAssignments(t *testing.T) {
	assert.Equal(t, constants.RolePengurusBarang,
		ProcurementTable.ResponsibleRole(StatusDiajukan, StatusDivalidasiPengurus))
	assert.Equal(t, constants.RolePenataUsahaBarang,
		ProcurementTable.ResponsibleRole(StatusDivalidasiPengurus, StatusDivalidasiPenatausahaan))
	assert.Equal(t, constants.RoleKepalaDinas,
		ProcurementTable.ResponsibleRole(StatusMenungguPersetujuan, StatusDisetujuiKepalaDinas))
	assert.Equal(t, constants.RoleAdmin,
		ProcurementTable.ResponsibleRole(StatusDisetujuiKepalaDinas, StatusSelesai))

	// penghapusan tidak lewat Menunggu Persetujuan
	assert.Equal(t, "",
		DisposalTable.ResponsibleRole(StatusDivalidasiPenatausahaan, StatusMenungguPersetujuan))
	assert.Equal(t, constants.RoleKepalaDinas,
		DisposalTable.ResponsibleRole(StatusDivalidasiPenatausahaan, StatusDisetujuiKepalaDinas))
}
