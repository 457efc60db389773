package constants

import "fmt"

// Enam role organisasi (string persis, case-sensitive)
const (
	RoleAdmin             = "Admin"
	RolePengurusBarang    = "Pengurus Barang"
	RolePenataUsahaBarang = "Penata Usaha Barang"
	RolePPK               = "PPK"
	RoleKepalaBidang      = "Kepala Bidang"
	RoleKepalaDinas       = "Kepala Dinas"
)

// Template pesan error role
const (
	ErrOnlyRoleCanAccess = "❌ Hanya %s yang boleh mengakses fitur %s."
)

func RoleError(role, feature string) string {
	return fmt.Sprintf(ErrOnlyRoleCanAccess, role, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePengurusBarang,
		RolePenataUsahaBarang,
		RolePPK,
		RoleKepalaBidang,
		RoleKepalaDinas,
	}

	// Role yang boleh mengelola master data (kategori, lokasi)
	MasterDataRoles = []string{
		RoleAdmin,
		RolePengurusBarang,
	}

	// Role yang boleh membaca ledger log validasi lintas entitas
	AuditReaderRoles = []string{
		RoleAdmin,
		RolePenataUsahaBarang,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	PengurusBarangOnly = []string{
		RolePengurusBarang,
	}

	PenataUsahaOnly = []string{
		RolePenataUsahaBarang,
	}

	KepalaDinasOnly = []string{
		RoleKepalaDinas,
	}
)

// IsValidRole memastikan role dikenal sebelum disimpan / dipakai gating.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
