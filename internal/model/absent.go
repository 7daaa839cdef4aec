package model

// Absent adalah catatan harian admin (tbl_absent): izin, cuti, sakit, dst.
// Maksimal satu per (nik, tanggal) dan mengalahkan semua aturan lain.
type Absent struct {
	NIK     string `json:"nik"`
	Tanggal string `json:"tanggal"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

// Sisi tapping yang dikoreksi admin.
const (
	SideIn  = "in"
	SideOut = "out"
)

// TappingNote adalah koreksi admin per sisi (tbl_absent_hourly).
// Tm boleh kosong: koreksi tanpa jam memakai jam tapping mesin bila ada.
type TappingNote struct {
	NIK     string  `json:"nik"`
	Tanggal string  `json:"tanggal"`
	Jam     string  `json:"jam"` // SideIn | SideOut
	Tm      *string `json:"tm"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}
