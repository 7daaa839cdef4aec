package model

// TapEvent adalah satu baris tapping mentah dari mesin absensi (att DB).
// Read-only untuk engine: tidak pernah diubah setelah extract.
type TapEvent struct {
	NIK      string `json:"nik"`
	Tanggal  string `json:"tanggal"` // YYYY-MM-DD
	Time     string `json:"time"`    // HH:MM:SS
	DeviceID string `json:"device_id"`
	Filename string `json:"filename"`
	Lat      string `json:"lat"`
	Long     string `json:"long"`
}

// TapFault menandai tapping yang gagal dinormalisasi (misal device_id
// bertipe aneh). Satu fault menggugurkan perhitungan pegawai tersebut
// untuk tanggal itu.
type TapFault struct {
	NIK     string
	Tanggal string
	Err     error
}
