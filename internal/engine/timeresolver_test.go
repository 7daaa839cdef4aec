package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-etl/internal/model"
)

func TestResolveTimeKoreksiDenganJam(t *testing.T) {
	tm := "08:00:00"
	note := &model.TappingNote{NIK: "100", Jam: model.SideIn, Tm: &tm}
	raw := &model.TapEvent{Time: "07:55:00"}

	got, source := ResolveTime(note, raw)
	require.NotNil(t, got)
	assert.Equal(t, "08:00:00", *got)
	assert.Equal(t, model.SourceAdmin, source)
}

func TestResolveTimeKoreksiTanpaJamPakaiMesin(t *testing.T) {
	note := &model.TappingNote{NIK: "100", Jam: model.SideIn}
	raw := &model.TapEvent{Time: "07:55:00"}

	got, source := ResolveTime(note, raw)
	require.NotNil(t, got)
	assert.Equal(t, "07:55:00", *got)
	assert.Equal(t, model.SourceAdmin, source)

	// Tm string kosong sama dengan tanpa jam.
	kosong := "  "
	note.Tm = &kosong
	got, source = ResolveTime(note, raw)
	require.NotNil(t, got)
	assert.Equal(t, "07:55:00", *got)
	assert.Equal(t, model.SourceAdmin, source)
}

func TestResolveTimeKoreksiTanpaJamTanpaMesin(t *testing.T) {
	note := &model.TappingNote{NIK: "100", Jam: model.SideOut}

	got, source := ResolveTime(note, nil)
	assert.Nil(t, got)
	assert.Equal(t, model.SourceAdmin, source)
}

func TestResolveTimeMesinSaja(t *testing.T) {
	raw := &model.TapEvent{Time: "17:30:00"}

	got, source := ResolveTime(nil, raw)
	require.NotNil(t, got)
	assert.Equal(t, "17:30:00", *got)
	assert.Equal(t, model.SourceMesin, source)
}

func TestResolveTimeTanpaApapun(t *testing.T) {
	got, source := ResolveTime(nil, nil)
	assert.Nil(t, got)
	assert.Equal(t, model.SourceAuto, source)
}
