package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-etl/internal/model"
)

func TestResolveJadwalPrioritas(t *testing.T) {
	snap := NewSnapshot(senin())

	snap.AddJadwalDinas(model.JadwalOrg{Hari: "1", JamMasuk: "07:30", JamPulang: "16:00"})
	snap.AddJadwalUnit(model.JadwalOrg{OrgID: "U1", Hari: "1", JamMasuk: "08:00", JamPulang: "17:00"})
	snap.AddJadwalSubUnit(model.JadwalOrg{OrgID: "SU1", Hari: "1", JamMasuk: "08:30", JamPulang: "17:30"})
	snap.AddJadwalPegawai(model.JadwalPegawai{NIK: "100", JamMasuk: "09:00", JamPulang: "18:00"})

	// Jadwal pegawai menang atas semua level organisasi.
	j := snap.ResolveJadwal("100", "U1", "SU1")
	assert.Equal(t, model.SumberJadwalPegawai, j.Sumber)
	require.NotNil(t, j.JamMasuk)
	assert.Equal(t, "09:00", *j.JamMasuk)

	// Tanpa jadwal pegawai, sub unit menang atas unit.
	j = snap.ResolveJadwal("200", "U1", "SU1")
	assert.Equal(t, model.SumberJadwalSubUnit, j.Sumber)
	require.NotNil(t, j.JamMasuk)
	assert.Equal(t, "08:30", *j.JamMasuk)

	// Tanpa sub unit, jatuh ke unit.
	j = snap.ResolveJadwal("200", "U1", "")
	assert.Equal(t, model.SumberJadwalUnit, j.Sumber)

	// Tanpa keduanya, jatuh ke jadwal dinas.
	j = snap.ResolveJadwal("200", "", "")
	assert.Equal(t, model.SumberJadwalDinas, j.Sumber)
	require.NotNil(t, j.JamMasuk)
	assert.Equal(t, "07:30", *j.JamMasuk)
}

func TestResolveJadwalHariAngkaAtauNama(t *testing.T) {
	snap := NewSnapshot(senin())

	snap.AddJadwalUnit(model.JadwalOrg{OrgID: "U1", Hari: "1", JamMasuk: "08:00", JamPulang: "17:00"})
	snap.AddJadwalUnit(model.JadwalOrg{OrgID: "U2", Hari: " Senin ", JamMasuk: "07:00", JamPulang: "15:00"})

	j := snap.ResolveJadwal("100", "U1", "")
	assert.Equal(t, model.SumberJadwalUnit, j.Sumber)

	j = snap.ResolveJadwal("100", "U2", "")
	require.Equal(t, model.SumberJadwalUnit, j.Sumber)
	require.NotNil(t, j.JamMasuk)
	assert.Equal(t, "07:00", *j.JamMasuk)
}

func TestResolveJadwalHariLainTidakKena(t *testing.T) {
	snap := NewSnapshot(senin())
	snap.AddJadwalUnit(model.JadwalOrg{OrgID: "U1", Hari: "2", JamMasuk: "08:00", JamPulang: "17:00"})

	j := snap.ResolveJadwal("100", "U1", "")
	assert.Empty(t, j.Sumber)
	assert.Nil(t, j.JamMasuk)
	assert.Nil(t, j.JamPulang)
}

func TestResolveJadwalTanpaMerge(t *testing.T) {
	snap := NewSnapshot(senin())
	// Sub unit hanya punya jam masuk; unit punya jadwal lengkap.
	snap.AddJadwalSubUnit(model.JadwalOrg{OrgID: "SU1", Hari: "1", JamMasuk: "08:30"})
	snap.AddJadwalUnit(model.JadwalOrg{OrgID: "U1", Hari: "1", JamMasuk: "08:00", JamPulang: "17:00"})

	// Level sub unit dipakai apa adanya; jam pulang TIDAK diambil dari unit.
	j := snap.ResolveJadwal("100", "U1", "SU1")
	assert.Equal(t, model.SumberJadwalSubUnit, j.Sumber)
	require.NotNil(t, j.JamMasuk)
	assert.Equal(t, "08:30", *j.JamMasuk)
	assert.Nil(t, j.JamPulang)
}

func TestResolveJadwalPenaltiIkutLevel(t *testing.T) {
	snap := NewSnapshot(senin())
	snap.AddJadwalUnit(model.JadwalOrg{
		OrgID: "U1", Hari: "1",
		JamMasuk: "08:00", JamPulang: "17:00",
		PenaltiIn: "30", PenaltiOut: "45",
	})

	j := snap.ResolveJadwal("100", "U1", "")
	assert.Equal(t, "30", j.PenaltiIn)
	assert.Equal(t, "45", j.PenaltiOut)
}
