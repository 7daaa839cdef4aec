package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"jam menit", "08:00", 480, true},
		{"jam menit detik", "07:55:30", 475, true},
		{"datetime penuh", "2024-05-01 17:10:00", 1030, true},
		{"durasi polos", "90", 90, true},
		{"spasi di sekitar", " 16:00 ", 960, true},
		{"kosong", "", 0, false},
		{"teks", "abc", 0, false},
		{"jam di luar jangkauan", "25:00", 0, false},
		{"menit di luar jangkauan", "08:75", 0, false},
		{"durasi negatif", "-5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToMinutes(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatPenalty(t *testing.T) {
	assert.Equal(t, 15, FlatPenalty("15"))
	assert.Equal(t, 12, FlatPenalty("12.7"))
	assert.Equal(t, 0, FlatPenalty(""))
	assert.Equal(t, 0, FlatPenalty("x"))
}
