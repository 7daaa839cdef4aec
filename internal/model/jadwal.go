package model

// JadwalPegawai adalah jadwal khusus per pegawai per tanggal (prioritas
// tertinggi saat resolve).
type JadwalPegawai struct {
	NIK        string `json:"nik"`
	Tanggal    string `json:"tanggal"`
	JamMasuk   string `json:"jam_masuk"`
	JamPulang  string `json:"jam_pulang"`
	PenaltiIn  string `json:"penalti_in"`
	PenaltiOut string `json:"penalti_out"`
}

// JadwalOrg adalah jadwal level organisasi (sub unit / unit / dinas).
// Hari bisa tersimpan sebagai angka 1-7 (senin=1) ATAU nama hari; resolver
// mencoba dua-duanya. OrgID kosong untuk jadwal dinas.
type JadwalOrg struct {
	OrgID      string `json:"org_id" gorm:"-"`
	Hari       string `json:"hari" gorm:"column:hari"`
	JamMasuk   string `json:"jam_masuk" gorm:"column:jam_masuk"`
	JamPulang  string `json:"jam_pulang" gorm:"column:jam_pulang"`
	PenaltiIn  string `json:"penalti_in" gorm:"column:penalti_in"`
	PenaltiOut string `json:"penalti_out" gorm:"column:penalti_out"`
}

// Sumber jadwal hasil resolve, urut prioritas.
const (
	SumberJadwalPegawai = "pegawai"
	SumberJadwalSubUnit = "sub_unit"
	SumberJadwalUnit    = "unit"
	SumberJadwalDinas   = "dinas"
)

// Jadwal adalah hasil akhir resolve untuk satu pegawai satu tanggal.
// JamMasuk/JamPulang nil kalau tidak ada jadwal di level manapun.
type Jadwal struct {
	JamMasuk   *string `json:"jam_masuk"`
	JamPulang  *string `json:"jam_pulang"`
	PenaltiIn  string  `json:"penalti_in"`
	PenaltiOut string  `json:"penalti_out"`
	Sumber     string  `json:"sumber"` // kosong = tidak ada jadwal
}
