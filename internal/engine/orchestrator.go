package engine

import (
	"fmt"
	"strings"

	"absensi-etl/internal/cache"
	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

// deskripsi perangkat untuk sisi yang dikoreksi admin
const deviceDescAdmin = "Administratif"

// ProcessPegawai membangun satu baris absensi_summaries untuk satu pegawai
// pada tanggal snapshot. Murni membaca snapshot (tanpa DB) dan deterministik,
// sehingga aman dijalankan paralel antar pegawai dan idempoten terhadap
// snapshot yang sama.
func ProcessPegawai(snap *cache.Snapshot, nik string) (*model.AbsensiSummary, error) {
	nik = utils.NormalizeNIK(nik)

	// Tapping dengan identitas perangkat rusak menggugurkan pegawai ini
	// untuk tanggal ini (programmer error di hulu, bukan data valid).
	if err := snap.Fault(nik); err != nil {
		return nil, fmt.Errorf("pegawai %s tanggal %s: %w", nik, snap.Tanggal(), err)
	}

	// =================================================
	// CONTEXT & LOKASI KERJA
	// =================================================
	ctx, active := snap.PegawaiCtx(nik)
	lokasiKerja := snap.BuildLokasiKerja(ctx.UnitID, ctx.LokasiKerja)

	// =================================================
	// TAPPING MENTAH, CATATAN HARIAN, KOREKSI ADMIN
	// =================================================
	taps := snap.Taps(nik)
	daily := snap.Absent(nik)
	noteIn := snap.TappingNote(nik, model.SideIn)
	noteOut := snap.TappingNote(nik, model.SideOut)

	// =================================================
	// JADWAL & KLASIFIKASI
	// =================================================
	jadwal := snap.ResolveJadwal(nik, ctx.UnitID, ctx.SubUnitID)
	rawIn, rawOut := ClassifyTaps(taps, jadwal.JamMasuk, jadwal.JamPulang)

	// =================================================
	// WAKTU FINAL
	// =================================================
	timeInFinal, timeInSource := ResolveTime(noteIn, rawIn)
	timeOutFinal, timeOutSource := ResolveTime(noteOut, rawOut)

	// =================================================
	// PERANGKAT
	// =================================================
	descIn, validIn, deviceIDIn := resolveDevice(snap, ctx.UnitID, lokasiKerja, rawIn, timeInSource)
	descOut, validOut, deviceIDOut := resolveDevice(snap, ctx.UnitID, lokasiKerja, rawOut, timeOutSource)

	// =================================================
	// STATE VECTOR & RULE ENGINE
	// =================================================
	st := stateVector{
		pegawaiActive:  active,
		hasDailyNote:   daily != nil,
		adminIn:        noteIn != nil,
		adminOut:       noteOut != nil,
		hasTapIn:       rawIn != nil,
		hasTapOut:      rawOut != nil,
		anyTaps:        len(taps) > 0,
		validDeviceIn:  validIn,
		validDeviceOut: validOut,
		hasTimeIn:      timeInFinal != nil,
		hasTimeOut:     timeOutFinal != nil,
		hasJadwal:      jadwal.JamMasuk != nil || jadwal.JamPulang != nil,
	}

	statusMasuk := resolveStatus(daily, active, st.hasTimeIn, validIn)
	statusPulang := resolveStatus(daily, active, st.hasTimeOut, validOut)
	statusHari := resolveStatusHari(daily, active, statusMasuk, statusPulang)

	menitTerlambat := lateMinutes(timeInFinal, jadwal.JamMasuk, jadwal.PenaltiIn)
	menitPulangCepat := earlyMinutes(timeOutFinal, jadwal.JamPulang, jadwal.PenaltiOut)

	atributMasuk := resolveAtribut(model.SideIn, st, menitTerlambat)
	atributPulang := resolveAtribut(model.SideOut, st, menitPulangCepat)

	// =================================================
	// BUILD ROW
	// =================================================
	return &model.AbsensiSummary{
		NIK:     nik,
		Tanggal: snap.Tanggal(),

		TimeIn:  tapTime(rawIn),
		TimeOut: tapTime(rawOut),

		TimeInFinal:  timeInFinal,
		TimeOutFinal: timeOutFinal,

		TimeInSource:  timeInSource,
		TimeOutSource: timeOutSource,

		StatusMasukFinal:  statusMasuk,
		StatusPulangFinal: statusPulang,
		StatusHariFinal:   statusHari,

		JadwalMasuk:  jadwal.JamMasuk,
		JadwalPulang: jadwal.JamPulang,
		SumberJadwal: sumberJadwal(jadwal.Sumber),

		DeviceDescIn:  descIn,
		DeviceIDIn:    deviceIDIn,
		DeviceDescOut: descOut,
		DeviceIDOut:   deviceIDOut,

		FilenameIn:  tapFilename(rawIn, timeInSource),
		FilenameOut: tapFilename(rawOut, timeOutSource),

		ValidDeviceIn:  validIn,
		ValidDeviceOut: validOut,

		AtributMasuk:  atributMasuk,
		AtributPulang: atributPulang,

		MenitTerlambat:   menitTerlambat,
		MenitPulangCepat: menitPulangCepat,

		Anomali:     resolveAnomali(st),
		LokasiKerja: lokasiKerja,
		FinalNote:   resolveFinalNote(daily, st),

		IsFinal: true,
	}, nil
}

// resolveDevice menentukan deskripsi, validitas, dan id perangkat satu
// sisi. Koreksi admin memaksa valid dan melewati lookup perangkat.
func resolveDevice(snap *cache.Snapshot, unitID string, lokasiKerja *string, raw *model.TapEvent, source string) (*string, bool, *string) {
	if source == model.SourceAdmin {
		desc := deviceDescAdmin
		return &desc, true, nil
	}

	if raw == nil {
		return nil, false, nil
	}

	deviceID := strings.TrimSpace(raw.DeviceID)
	desc := snap.DeviceDesc(unitID, deviceID)
	valid := cache.IsDeviceValid(deviceID, lokasiKerja)

	var idPtr *string
	if deviceID != "" {
		idPtr = &deviceID
	}
	return desc, valid, idPtr
}

func tapTime(raw *model.TapEvent) *string {
	if raw == nil {
		return nil
	}
	t := raw.Time
	return &t
}

// tapFilename hanya mengisi filename kalau waktu final benar-benar berasal
// dari mesin.
func tapFilename(raw *model.TapEvent, source string) *string {
	if raw == nil || source != model.SourceMesin || raw.Filename == "" {
		return nil
	}
	f := raw.Filename
	return &f
}

func sumberJadwal(sumber string) *string {
	if sumber == "" {
		return nil
	}
	return &sumber
}
