package engine

import (
	"strings"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

// stateVector adalah seluruh kondisi boolean satu pegawai satu hari,
// dihitung sekali lalu dipakai semua rule.
type stateVector struct {
	pegawaiActive  bool
	hasDailyNote   bool
	adminIn        bool
	adminOut       bool
	hasTapIn       bool // tapping mentah terklasifikasi sisi masuk
	hasTapOut      bool
	anyTaps        bool
	validDeviceIn  bool
	validDeviceOut bool
	hasTimeIn      bool
	hasTimeOut     bool
	hasJadwal      bool
}

// resolveStatus menentukan status satu sisi. Urutan rule mutlak:
// catatan harian admin > pegawai nonaktif > tidak ada waktu final >
// perangkat invalid > HADIR.
func resolveStatus(daily *model.Absent, active, hasTime, validDevice bool) string {
	if daily != nil {
		return daily.Status
	}
	if !active {
		return model.StatusAlpa
	}
	if !hasTime {
		return model.StatusAlpa
	}
	if !validDevice {
		return model.StatusAlpa
	}
	return model.StatusHadir
}

// resolveStatusHari menentukan status sehari penuh. Tanpa catatan harian,
// ALPA hanya kalau pegawai nonaktif atau dua sisi sama-sama ALPA.
func resolveStatusHari(daily *model.Absent, active bool, statusMasuk, statusPulang string) string {
	if daily != nil {
		return daily.Status
	}
	if !active {
		return model.StatusAlpa
	}
	if statusMasuk == model.StatusAlpa && statusPulang == model.StatusAlpa {
		return model.StatusAlpa
	}
	return model.StatusHadir
}

// resolveAtribut menentukan kode atribut satu sisi, saling eksklusif,
// rule pertama yang cocok menang.
func resolveAtribut(sisi string, st stateVector, penaltiMenit int) *string {
	admin := st.adminIn
	hasTap := st.hasTapIn
	valid := st.validDeviceIn
	if sisi == model.SideOut {
		admin = st.adminOut
		hasTap = st.hasTapOut
		valid = st.validDeviceOut
	}

	switch {
	case st.hasDailyNote:
		return atribut(model.AtributAdm)
	case admin:
		return atribut(model.AtributAdm)
	case !hasTap:
		return nil
	case !valid:
		return atribut(model.AtributInvalidAlat)
	case sisi == model.SideIn && penaltiMenit > 0:
		return atribut(model.AtributTerlambat)
	case sisi == model.SideOut && penaltiMenit > 0:
		return atribut(model.AtributPulangCepat)
	default:
		return nil
	}
}

func atribut(kode string) *string {
	return &kode
}

// lateMinutes menghitung menit keterlambatan. Kalau jam final dan jadwal
// dua-duanya terbaca, selisih langsung yang dipakai; kalau tidak, jatuh
// ke penalti flat dari jadwal.
func lateMinutes(timeInFinal, jamMasuk *string, penaltiIn string) int {
	in, okIn := minutesOf(timeInFinal)
	masuk, okMasuk := minutesOf(jamMasuk)
	if okIn && okMasuk {
		if d := in - masuk; d > 0 {
			return d
		}
		return 0
	}
	return utils.FlatPenalty(penaltiIn)
}

// earlyMinutes adalah cermin lateMinutes untuk pulang cepat.
func earlyMinutes(timeOutFinal, jamPulang *string, penaltiOut string) int {
	out, okOut := minutesOf(timeOutFinal)
	pulang, okPulang := minutesOf(jamPulang)
	if okOut && okPulang {
		if d := pulang - out; d > 0 {
			return d
		}
		return 0
	}
	return utils.FlatPenalty(penaltiOut)
}

func minutesOf(v *string) (int, bool) {
	if v == nil {
		return 0, false
	}
	return utils.ToMinutes(*v)
}

// resolveAnomali menggabungkan flag anomali dengan urutan stabil:
// NO_TAP | NO_IN | NO_OUT | NO_SCHEDULE | ADMIN_OVERRIDE. Nil kalau bersih.
func resolveAnomali(st stateVector) *string {
	var flags []string
	if !st.anyTaps {
		flags = append(flags, model.AnomaliNoTap)
	} else {
		if !st.hasTapIn {
			flags = append(flags, model.AnomaliNoIn)
		}
		if !st.hasTapOut {
			flags = append(flags, model.AnomaliNoOut)
		}
	}
	if !st.hasJadwal {
		flags = append(flags, model.AnomaliNoSchedule)
	}
	if st.adminIn || st.adminOut {
		flags = append(flags, model.AnomaliAdminOverride)
	}
	if len(flags) == 0 {
		return nil
	}
	joined := strings.Join(flags, "|")
	return &joined
}

// resolveFinalNote menentukan catatan akhir baris summary.
func resolveFinalNote(daily *model.Absent, st stateVector) string {
	switch {
	case daily != nil:
		return daily.Status
	case st.adminIn || st.adminOut:
		return model.NoteAdminOverride
	case !st.pegawaiActive:
		return model.NoteNoActiveHistory
	case !st.validDeviceIn || !st.validDeviceOut:
		return model.NoteInvalidDevice
	default:
		return model.NoteAuto
	}
}
