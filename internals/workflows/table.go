package workflows

import (
	"fmt"

	"simaset_backend/internals/constants"
)

// Rule mendeklarasikan satu transisi legal: dari status apa, ke status apa,
// dan role mana yang bertanggung jawab menjalankannya.
type Rule struct {
	From string
	To   string
	Role string
}

// Table adalah definisi state machine satu jenis entitas. Semua pengecekan
// transisi lewat sini, tidak ada perbandingan role/status tersebar di call site.
type Table struct {
	Kind EntityKind
	// Status terminal; transisi keluar dari status ini selalu ditolak.
	Terminal []string
	Rules    []Rule
	// Status tujuan yang mewajibkan catatan tidak kosong (mis. Ditolak).
	NoteRequired []string
}

func (t Table) isTerminal(s string) bool {
	for _, v := range t.Terminal {
		if v == s {
			return true
		}
	}
	return false
}

func (t Table) noteRequired(to string) bool {
	for _, v := range t.NoteRequired {
		if v == to {
			return true
		}
	}
	return false
}

// NextStates mengembalikan daftar status tujuan yang legal dari satu status.
func (t Table) NextStates(from string) []string {
	var out []string
	for _, r := range t.Rules {
		if r.From == from {
			out = append(out, r.To)
		}
	}
	return out
}

// ResponsibleRole mengembalikan role yang berwenang atas satu pasangan
// (from, to), atau "" jika pasangan itu tidak ada di tabel.
func (t Table) ResponsibleRole(from, to string) string {
	for _, r := range t.Rules {
		if r.From == from && r.To == to {
			return r.Role
		}
	}
	return ""
}

// Guard memeriksa legalitas transisi: graf dulu, baru role, baru catatan.
// Urutan ini penting supaya status stale terdeteksi sebagai InvalidTransition,
// bukan Forbidden.
func (t Table) Guard(from, to, role string, note *string) error {
	if t.isTerminal(from) {
		return InvalidTransition(fmt.Sprintf("%s berstatus %q dan sudah final", t.Kind, from))
	}
	responsible := t.ResponsibleRole(from, to)
	if responsible == "" {
		return InvalidTransition(fmt.Sprintf("transisi %q → %q tidak dikenal untuk %s", from, to, t.Kind))
	}
	if role != responsible {
		return Forbidden(fmt.Sprintf("transisi %q → %q hanya boleh dilakukan %s", from, to, responsible))
	}
	if t.noteRequired(to) && (note == nil || *note == "") {
		return Validation(fmt.Sprintf("catatan wajib diisi saat menolak %s", t.Kind))
	}
	return nil
}

// ===========================================================================
// Definisi state machine per entitas
// ===========================================================================

// ItemValidationTable: validasi barang baru oleh Pengurus Barang.
// Tersedia ⇄ Dipinjam dan → Tidak Aktif digerakkan workflow lain
// (peminjaman / penghapusan), bukan lewat tabel ini.
var ItemValidationTable = Table{
	Kind:     KindBarang,
	Terminal: []string{StatusDitolak, StatusTidakAktif},
	Rules: []Rule{
		{From: StatusMenungguValidasi, To: StatusTersedia, Role: constants.RolePengurusBarang},
		{From: StatusMenungguValidasi, To: StatusDitolak, Role: constants.RolePengurusBarang},
	},
}

// LoanTable: Diajukan → Divalidasi Pengurus Barang → Selesai, atau ditolak.
var LoanTable = Table{
	Kind:     KindPeminjaman,
	Terminal: []string{StatusSelesai, StatusDitolak},
	Rules: []Rule{
		{From: StatusDiajukan, To: StatusDivalidasiPengurus, Role: constants.RolePengurusBarang},
		{From: StatusDiajukan, To: StatusDitolak, Role: constants.RolePengurusBarang},
		{From: StatusDivalidasiPengurus, To: StatusSelesai, Role: constants.RolePengurusBarang},
	},
}

// ProcurementTable: rantai empat role. Ditolak bisa dicapai dari setiap status
// non-terminal oleh role yang sedang bertanggung jawab di status itu.
var ProcurementTable = Table{
	Kind:         KindRencanaPengadaan,
	Terminal:     []string{StatusSelesai, StatusDitolak},
	NoteRequired: []string{StatusDitolak},
	Rules: []Rule{
		{From: StatusDiajukan, To: StatusDivalidasiPengurus, Role: constants.RolePengurusBarang},
		{From: StatusDiajukan, To: StatusDitolak, Role: constants.RolePengurusBarang},
		{From: StatusDivalidasiPengurus, To: StatusDivalidasiPenatausahaan, Role: constants.RolePenataUsahaBarang},
		{From: StatusDivalidasiPengurus, To: StatusDitolak, Role: constants.RolePenataUsahaBarang},
		{From: StatusDivalidasiPenatausahaan, To: StatusMenungguPersetujuan, Role: constants.RolePenataUsahaBarang},
		{From: StatusDivalidasiPenatausahaan, To: StatusDitolak, Role: constants.RolePenataUsahaBarang},
		{From: StatusMenungguPersetujuan, To: StatusDisetujuiKepalaDinas, Role: constants.RoleKepalaDinas},
		{From: StatusMenungguPersetujuan, To: StatusDitolak, Role: constants.RoleKepalaDinas},
		{From: StatusDisetujuiKepalaDinas, To: StatusSelesai, Role: constants.RoleAdmin},
		{From: StatusDisetujuiKepalaDinas, To: StatusDitolak, Role: constants.RoleAdmin},
	},
}

// DisposalTable: rantai yang sama dengan pengadaan, tanpa Menunggu Persetujuan.
// Selesai hanya dicapai lewat upload dokumen penghapusan bertanda tangan;
// pembatalan dokumen adalah operasi kompensasi tersendiri (bukan rule mundur).
var DisposalTable = Table{
	Kind:         KindPenghapusan,
	Terminal:     []string{StatusSelesai, StatusDitolak},
	NoteRequired: []string{StatusDitolak},
	Rules: []Rule{
		{From: StatusDiajukan, To: StatusDivalidasiPengurus, Role: constants.RolePengurusBarang},
		{From: StatusDiajukan, To: StatusDitolak, Role: constants.RolePengurusBarang},
		{From: StatusDivalidasiPengurus, To: StatusDivalidasiPenatausahaan, Role: constants.RolePenataUsahaBarang},
		{From: StatusDivalidasiPengurus, To: StatusDitolak, Role: constants.RolePenataUsahaBarang},
		{From: StatusDivalidasiPenatausahaan, To: StatusDisetujuiKepalaDinas, Role: constants.RoleKepalaDinas},
		{From: StatusDivalidasiPenatausahaan, To: StatusDitolak, Role: constants.RoleKepalaDinas},
		{From: StatusDisetujuiKepalaDinas, To: StatusSelesai, Role: constants.RolePengurusBarang},
		{From: StatusDisetujuiKepalaDinas, To: StatusDitolak, Role: constants.RolePengurusBarang},
	},
}
