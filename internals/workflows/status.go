package workflows

// EntityKind menandai entitas mana yang direferensikan satu baris log_validasi.
type EntityKind string

const (
	KindBarang           EntityKind = "barang"
	KindPeminjaman       EntityKind = "peminjaman"
	KindRencanaPengadaan EntityKind = "rencana_pengadaan"
	KindPenghapusan      EntityKind = "penghapusan"
)

func (k EntityKind) Valid() bool {
	switch k {
	case KindBarang, KindPeminjaman, KindRencanaPengadaan, KindPenghapusan:
		return true
	}
	return false
}

// Status barang. String persis, case-sensitive (round-trip ke frontend lama).
const (
	StatusMenungguValidasi = "Menunggu Validasi"
	StatusTersedia         = "Tersedia"
	StatusDipinjam         = "Dipinjam"
	StatusDalamPerbaikan   = "Dalam Perbaikan"
	StatusRusakBerat       = "Rusak Berat"
	StatusTidakAktif       = "Tidak Aktif"
)

// Status workflow pengajuan (peminjaman / rencana pengadaan / penghapusan).
const (
	StatusDiajukan                = "Diajukan"
	StatusDivalidasiPengurus      = "Divalidasi Pengurus Barang"
	StatusDivalidasiPenatausahaan = "Divalidasi Penatausahaan"
	StatusMenungguPersetujuan     = "Menunggu Persetujuan"
	StatusDisetujuiKepalaDinas    = "Disetujui Kepala Dinas"
	StatusSelesai                 = "Selesai"
	StatusDitolak                 = "Ditolak"
)

// Status administratif barang yang hanya boleh diubah lewat edit langsung Admin,
// bukan lewat workflow.
var AdminOnlyItemStatuses = []string{
	StatusDalamPerbaikan,
	StatusRusakBerat,
}

// ItemStatuses adalah himpunan tertutup status barang.
var ItemStatuses = []string{
	StatusMenungguValidasi,
	StatusTersedia,
	StatusDipinjam,
	StatusDalamPerbaikan,
	StatusRusakBerat,
	StatusTidakAktif,
	StatusDitolak,
}

func IsItemStatus(s string) bool {
	for _, v := range ItemStatuses {
		if v == s {
			return true
		}
	}
	return false
}
