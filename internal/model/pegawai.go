package model

// PegawaiContext adalah history aktif satu pegawai pada tanggal proses.
// ID unit/sub unit disimpan sebagai string hasil trim, bukan angka,
// supaya leading zero tidak hilang saat dibandingkan.
type PegawaiContext struct {
	NIK         string `json:"nik"`
	UnitID      string `json:"unit_id"`
	SubUnitID   string `json:"sub_unit_id"`
	LokasiKerja string `json:"lokasi_kerja"` // csv device id dari history, sudah dinormalisasi
}
