package dto

type KategoriBarangRequest struct {
	Kode string `json:"kode" validate:"required,min=1,max=20"`
	Nama string `json:"nama" validate:"required,min=2,max=100"`
}

type LokasiRequest struct {
	Nama       string  `json:"nama" validate:"required,min=2,max=100"`
	Gedung     *string `json:"gedung,omitempty" validate:"omitempty,max=100"`
	Keterangan *string `json:"keterangan,omitempty"`
}
