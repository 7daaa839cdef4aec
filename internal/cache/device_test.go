package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-etl/internal/model"
)

func TestAddDeviceCommaUnits(t *testing.T) {
	snap := NewSnapshot(senin())
	snap.AddDevice(model.Device{UnitID: "3, 7", DeviceID: "D1", Desc: "Lobby"})

	for _, unit := range []string{"3", "7"} {
		desc := snap.DeviceDesc(unit, "D1")
		require.NotNil(t, desc, "unit %s", unit)
		assert.Equal(t, "Lobby", *desc)
	}
	assert.Nil(t, snap.DeviceDesc("12", "D1"))
}

func TestDeviceDescLeadingZeroSafe(t *testing.T) {
	snap := NewSnapshot(senin())
	snap.AddDevice(model.Device{UnitID: "07", DeviceID: "001", Desc: "Gerbang"})

	// Perbandingan murni string: "7" dan "07" adalah unit yang berbeda.
	assert.NotNil(t, snap.DeviceDesc("07", "001"))
	assert.Nil(t, snap.DeviceDesc("7", "001"))
	assert.Nil(t, snap.DeviceDesc("07", "1"))
}

func TestBuildLokasiKerja(t *testing.T) {
	snap := NewSnapshot(senin())
	snap.AddDevice(model.Device{UnitID: "U1", DeviceID: "D2", Desc: "Lantai 2"})
	snap.AddDevice(model.Device{UnitID: "U1", DeviceID: "D1", Desc: "Lobby"})

	lokasi := snap.BuildLokasiKerja("U1", "D3,D1")
	require.NotNil(t, lokasi)
	assert.Equal(t, "D1,D2,D3", *lokasi)

	// History saja, unit tanpa device.
	lokasi = snap.BuildLokasiKerja("U9", "D9")
	require.NotNil(t, lokasi)
	assert.Equal(t, "D9", *lokasi)

	// Dua-duanya kosong.
	assert.Nil(t, snap.BuildLokasiKerja("U9", ""))
}

func TestIsDeviceValid(t *testing.T) {
	lokasi := "D1,D2,D9"

	assert.True(t, IsDeviceValid("D1", &lokasi))
	assert.True(t, IsDeviceValid(" D9 ", &lokasi))
	assert.False(t, IsDeviceValid("D3", &lokasi))
	assert.False(t, IsDeviceValid("", &lokasi))
	assert.False(t, IsDeviceValid("D1", nil))

	kosong := "  "
	assert.False(t, IsDeviceValid("D1", &kosong))
}
