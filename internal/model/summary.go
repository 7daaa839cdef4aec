package model

import "gorm.io/gorm"

// Status akhir yang mungkin dihasilkan rule engine (di luar status bebas
// dari catatan harian admin seperti IZIN/CUTI/SAKIT).
const (
	StatusHadir = "HADIR"
	StatusAlpa  = "ALPA"
)

// Sumber waktu final per sisi.
const (
	SourceAdmin = "ADMIN"
	SourceMesin = "MESIN"
	SourceAuto  = "AUTO"
)

// Kode atribut per sisi.
const (
	AtributAdm         = "/Adm" // dikoreksi admin / catatan harian
	AtributInvalidAlat = "/X"   // tapping di mesin yang bukan lokasi kerjanya
	AtributTerlambat   = "/T"
	AtributPulangCepat = "/PC"
)

// Flag anomali, digabung dengan pipa sesuai urutan deklarasi.
const (
	AnomaliNoTap         = "NO_TAP"
	AnomaliNoIn          = "NO_IN"
	AnomaliNoOut         = "NO_OUT"
	AnomaliNoSchedule    = "NO_SCHEDULE"
	AnomaliAdminOverride = "ADMIN_OVERRIDE"
)

// Catatan akhir baris summary.
const (
	NoteAdminOverride   = "ADMIN_OVERRIDE"
	NoteNoActiveHistory = "NO_ACTIVE_HISTORY"
	NoteInvalidDevice   = "INVALID_DEVICE"
	NoteAuto            = "AUTO"
)

// AbsensiSummary adalah satu baris verdict harian per (nik, tanggal),
// hasil akhir rekonsiliasi yang di-upsert ke absensi_summaries.
type AbsensiSummary struct {
	gorm.Model
	NIK     string `json:"nik" gorm:"column:nik;index:idx_nik_tanggal,unique"`
	Tanggal string `json:"tanggal" gorm:"column:tanggal;index:idx_nik_tanggal,unique"`

	TimeIn  *string `json:"time_in" gorm:"column:time_in"`   // tapping mesin mentah
	TimeOut *string `json:"time_out" gorm:"column:time_out"`

	TimeInFinal  *string `json:"time_in_final" gorm:"column:time_in_final"`
	TimeOutFinal *string `json:"time_out_final" gorm:"column:time_out_final"`

	TimeInSource  string `json:"time_in_source" gorm:"column:time_in_source"`
	TimeOutSource string `json:"time_out_source" gorm:"column:time_out_source"`

	StatusMasukFinal  string `json:"status_masuk_final" gorm:"column:status_masuk_final"`
	StatusPulangFinal string `json:"status_pulang_final" gorm:"column:status_pulang_final"`
	StatusHariFinal   string `json:"status_hari_final" gorm:"column:status_hari_final"`

	JadwalMasuk  *string `json:"jadwal_masuk" gorm:"column:jadwal_masuk"`
	JadwalPulang *string `json:"jadwal_pulang" gorm:"column:jadwal_pulang"`
	SumberJadwal *string `json:"sumber_jadwal" gorm:"column:sumber_jadwal"`

	DeviceDescIn  *string `json:"device_desc_in" gorm:"column:device_desc_in"`
	DeviceIDIn    *string `json:"device_id_in" gorm:"column:device_id_in"`
	DeviceDescOut *string `json:"device_desc_out" gorm:"column:device_desc_out"`
	DeviceIDOut   *string `json:"device_id_out" gorm:"column:device_id_out"`

	FilenameIn  *string `json:"filename_in" gorm:"column:filename_in"`
	FilenameOut *string `json:"filename_out" gorm:"column:filename_out"`

	ValidDeviceIn  bool `json:"valid_device_in" gorm:"column:valid_device_in"`
	ValidDeviceOut bool `json:"valid_device_out" gorm:"column:valid_device_out"`

	AtributMasuk  *string `json:"atribut_masuk" gorm:"column:atribut_masuk"`
	AtributPulang *string `json:"atribut_pulang" gorm:"column:atribut_pulang"`

	MenitTerlambat   int `json:"menit_terlambat" gorm:"column:menit_terlambat"`
	MenitPulangCepat int `json:"menit_pulang_cepat" gorm:"column:menit_pulang_cepat"`

	Anomali     *string `json:"anomali" gorm:"column:anomali"`
	LokasiKerja *string `json:"lokasi_kerja" gorm:"column:lokasi_kerja"`
	FinalNote   string  `json:"final_note" gorm:"column:final_note"`

	// Monotonic: selalu di-set true saat upsert, tidak pernah diturunkan.
	IsFinal bool `json:"is_final" gorm:"column:is_final"`
}

func (AbsensiSummary) TableName() string {
	return "absensi_summaries"
}
