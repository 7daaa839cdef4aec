package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-etl/internal/cache"
	"absensi-etl/internal/model"
)

// snapshot senin 2024-05-06: pegawai 100 di unit U1, mesin D1 milik U1,
// jadwal pegawai 08:00-17:00.
func hariKerja(t *testing.T) *cache.Snapshot {
	t.Helper()
	snap := cache.NewSnapshot(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	snap.AddPegawaiCtx(model.PegawaiContext{NIK: "100", UnitID: "U1"})
	snap.AddDevice(model.Device{UnitID: "U1", DeviceID: "D1", Desc: "Lobby"})
	snap.AddJadwalPegawai(model.JadwalPegawai{NIK: "100", JamMasuk: "08:00:00", JamPulang: "17:00:00"})
	return snap
}

func tapD1(jam string) model.TapEvent {
	return model.TapEvent{NIK: "100", Time: jam, DeviceID: "D1", Filename: "att_" + jam + ".dat"}
}

func TestProcessPegawaiHariNormal(t *testing.T) {
	snap := hariKerja(t)
	for _, jam := range []string{"07:55:00", "08:05:00", "17:10:00", "17:30:00"} {
		snap.AddTap(tapD1(jam))
	}

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Equal(t, "100", row.NIK)
	assert.Equal(t, "2024-05-06", row.Tanggal)

	// Paling awal sebelum jam masuk, paling akhir setelah jam pulang;
	// tapping 08:05 di antara batas tidak dipakai.
	require.NotNil(t, row.TimeIn)
	require.NotNil(t, row.TimeOut)
	assert.Equal(t, "07:55:00", *row.TimeIn)
	assert.Equal(t, "17:30:00", *row.TimeOut)
	require.NotNil(t, row.TimeInFinal)
	require.NotNil(t, row.TimeOutFinal)
	assert.Equal(t, "07:55:00", *row.TimeInFinal)
	assert.Equal(t, "17:30:00", *row.TimeOutFinal)
	assert.Equal(t, model.SourceMesin, row.TimeInSource)
	assert.Equal(t, model.SourceMesin, row.TimeOutSource)

	assert.Equal(t, model.StatusHadir, row.StatusMasukFinal)
	assert.Equal(t, model.StatusHadir, row.StatusPulangFinal)
	assert.Equal(t, model.StatusHadir, row.StatusHariFinal)

	assert.Zero(t, row.MenitTerlambat)
	assert.Zero(t, row.MenitPulangCepat)
	assert.Nil(t, row.AtributMasuk)
	assert.Nil(t, row.AtributPulang)
	assert.Nil(t, row.Anomali)
	assert.Equal(t, model.NoteAuto, row.FinalNote)

	assert.True(t, row.ValidDeviceIn)
	assert.True(t, row.ValidDeviceOut)
	require.NotNil(t, row.DeviceDescIn)
	assert.Equal(t, "Lobby", *row.DeviceDescIn)
	require.NotNil(t, row.DeviceIDIn)
	assert.Equal(t, "D1", *row.DeviceIDIn)
	require.NotNil(t, row.FilenameIn)
	assert.Equal(t, "att_07:55:00.dat", *row.FilenameIn)

	require.NotNil(t, row.SumberJadwal)
	assert.Equal(t, model.SumberJadwalPegawai, *row.SumberJadwal)
	require.NotNil(t, row.LokasiKerja)
	assert.Equal(t, "D1", *row.LokasiKerja)

	assert.True(t, row.IsFinal)
}

func TestProcessPegawaiTanpaTapping(t *testing.T) {
	snap := hariKerja(t)

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Nil(t, row.TimeIn)
	assert.Nil(t, row.TimeInFinal)
	assert.Equal(t, model.SourceAuto, row.TimeInSource)
	assert.Equal(t, model.SourceAuto, row.TimeOutSource)

	assert.Equal(t, model.StatusAlpa, row.StatusMasukFinal)
	assert.Equal(t, model.StatusAlpa, row.StatusPulangFinal)
	assert.Equal(t, model.StatusAlpa, row.StatusHariFinal)

	require.NotNil(t, row.Anomali)
	assert.Equal(t, model.AnomaliNoTap, *row.Anomali)
	assert.Equal(t, model.NoteInvalidDevice, row.FinalNote)
	assert.Nil(t, row.AtributMasuk)
	assert.Zero(t, row.MenitTerlambat)
}

func TestProcessPegawaiCatatanHarian(t *testing.T) {
	snap := hariKerja(t)
	snap.AddAbsent(model.Absent{NIK: "100", Tanggal: "2024-05-06", Status: "IZIN"})

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Equal(t, "IZIN", row.StatusMasukFinal)
	assert.Equal(t, "IZIN", row.StatusPulangFinal)
	assert.Equal(t, "IZIN", row.StatusHariFinal)
	assert.Equal(t, "IZIN", row.FinalNote)

	require.NotNil(t, row.AtributMasuk)
	require.NotNil(t, row.AtributPulang)
	assert.Equal(t, model.AtributAdm, *row.AtributMasuk)
	assert.Equal(t, model.AtributAdm, *row.AtributPulang)
}

func TestProcessPegawaiKoreksiAdmin(t *testing.T) {
	snap := hariKerja(t)
	snap.AddTap(tapD1("17:30:00"))
	tm := "08:00:00"
	snap.AddTappingNote(model.TappingNote{NIK: "100", Jam: model.SideIn, Tm: &tm})

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	require.NotNil(t, row.TimeInFinal)
	assert.Equal(t, "08:00:00", *row.TimeInFinal)
	assert.Equal(t, model.SourceAdmin, row.TimeInSource)
	assert.Equal(t, model.SourceMesin, row.TimeOutSource)

	// Sisi yang dikoreksi admin: perangkat dianggap valid, deskripsi
	// administratif, tanpa id mesin dan tanpa filename.
	assert.True(t, row.ValidDeviceIn)
	require.NotNil(t, row.DeviceDescIn)
	assert.Equal(t, "Administratif", *row.DeviceDescIn)
	assert.Nil(t, row.DeviceIDIn)
	assert.Nil(t, row.FilenameIn)

	require.NotNil(t, row.AtributMasuk)
	assert.Equal(t, model.AtributAdm, *row.AtributMasuk)

	require.NotNil(t, row.Anomali)
	assert.Equal(t, "NO_IN|ADMIN_OVERRIDE", *row.Anomali)
	assert.Equal(t, model.NoteAdminOverride, row.FinalNote)

	assert.Equal(t, model.StatusHadir, row.StatusMasukFinal)
	assert.Equal(t, model.StatusHadir, row.StatusHariFinal)
}

func TestProcessPegawaiPerangkatLuarLokasi(t *testing.T) {
	snap := hariKerja(t)
	snap.AddTap(model.TapEvent{NIK: "100", Time: "07:55:00", DeviceID: "D2"})
	snap.AddTap(tapD1("17:30:00"))

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.False(t, row.ValidDeviceIn)
	assert.True(t, row.ValidDeviceOut)
	assert.Equal(t, model.StatusAlpa, row.StatusMasukFinal)
	assert.Equal(t, model.StatusHadir, row.StatusPulangFinal)
	assert.Equal(t, model.StatusHadir, row.StatusHariFinal)

	require.NotNil(t, row.AtributMasuk)
	assert.Equal(t, model.AtributInvalidAlat, *row.AtributMasuk)
	assert.Equal(t, model.NoteInvalidDevice, row.FinalNote)
}

func TestProcessPegawaiLokasiDariHistorySaja(t *testing.T) {
	// Mesin D9 tidak terdaftar di tbl_device, tapi ada di lokasi_kerja
	// history pegawai: tetap valid, hanya deskripsinya kosong.
	snap := cache.NewSnapshot(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	snap.AddPegawaiCtx(model.PegawaiContext{NIK: "100", UnitID: "U1", LokasiKerja: "D9"})
	snap.AddJadwalPegawai(model.JadwalPegawai{NIK: "100", JamMasuk: "08:00:00", JamPulang: "17:00:00"})
	snap.AddTap(model.TapEvent{NIK: "100", Time: "07:55:00", DeviceID: "D9"})

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.True(t, row.ValidDeviceIn)
	assert.Nil(t, row.DeviceDescIn)
	assert.Equal(t, model.StatusHadir, row.StatusMasukFinal)
}

func TestProcessPegawaiTerlambatDanPulangCepat(t *testing.T) {
	// Koreksi admin dengan jam setelah jam masuk / sebelum jam pulang:
	// menit penalti tetap dihitung dari selisih, tapi atributnya /Adm.
	snap := hariKerja(t)
	masuk := "08:10:00"
	pulang := "16:40:00"
	snap.AddTappingNote(model.TappingNote{NIK: "100", Jam: model.SideIn, Tm: &masuk})
	snap.AddTappingNote(model.TappingNote{NIK: "100", Jam: model.SideOut, Tm: &pulang})

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Equal(t, 10, row.MenitTerlambat)
	assert.Equal(t, 20, row.MenitPulangCepat)
	require.NotNil(t, row.AtributMasuk)
	assert.Equal(t, model.AtributAdm, *row.AtributMasuk)
}

func TestProcessPegawaiTanpaJadwal(t *testing.T) {
	snap := cache.NewSnapshot(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	snap.AddPegawaiCtx(model.PegawaiContext{NIK: "100", UnitID: "U1"})
	snap.AddDevice(model.Device{UnitID: "U1", DeviceID: "D1", Desc: "Lobby"})
	snap.AddTap(tapD1("07:55:00"))

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	// Tanpa batas jadwal tidak ada klasifikasi sama sekali.
	assert.Nil(t, row.TimeIn)
	assert.Nil(t, row.JadwalMasuk)
	assert.Nil(t, row.SumberJadwal)
	require.NotNil(t, row.Anomali)
	assert.Equal(t, "NO_IN|NO_OUT|NO_SCHEDULE", *row.Anomali)
}

func TestProcessPegawaiTanpaHistoryAktif(t *testing.T) {
	snap := cache.NewSnapshot(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	snap.AddJadwalDinas(model.JadwalOrg{Hari: "1", JamMasuk: "07:30:00", JamPulang: "16:00:00"})
	snap.AddTap(model.TapEvent{NIK: "100", Time: "07:00:00", DeviceID: "D1"})

	row, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Equal(t, model.StatusAlpa, row.StatusMasukFinal)
	assert.Equal(t, model.StatusAlpa, row.StatusHariFinal)
	assert.Equal(t, model.NoteNoActiveHistory, row.FinalNote)
	assert.Nil(t, row.LokasiKerja)
	// Tapping tetap tercatat apa adanya.
	require.NotNil(t, row.TimeIn)
	assert.Equal(t, "07:00:00", *row.TimeIn)
}

func TestProcessPegawaiFault(t *testing.T) {
	snap := hariKerja(t)
	snap.AddFault("100", assert.AnError)

	row, err := ProcessPegawai(snap, "100")
	require.Error(t, err)
	assert.Nil(t, row)
	assert.Contains(t, err.Error(), "100")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestProcessPegawaiIdempoten(t *testing.T) {
	snap := hariKerja(t)
	for _, jam := range []string{"07:55:00", "17:30:00"} {
		snap.AddTap(tapD1(jam))
	}

	first, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)
	second, err := ProcessPegawai(snap, "100")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
