package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColString(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string trim", " 08:00:00 ", "08:00:00"},
		{"bytes", []byte("keterangan"), "keterangan"},
		{"int", 30, "30"},
		{"int64", int64(30), "30"},
		{"float64", 12.5, "12.5"},
		{"time", time.Date(2024, 5, 6, 7, 55, 0, 0, time.UTC), "07:55:00"},
		{"tipe lain", struct{}{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, colString(tt.input))
		})
	}
}

func TestColStringPtr(t *testing.T) {
	got := colStringPtr("16:00:00")
	require.NotNil(t, got)
	assert.Equal(t, "16:00:00", *got)

	assert.Nil(t, colStringPtr(nil))
	assert.Nil(t, colStringPtr("   "))
}
