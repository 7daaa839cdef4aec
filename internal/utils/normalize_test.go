package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNIK(t *testing.T) {
	assert.Equal(t, "198001012005011001", NormalizeNIK("  198001012005011001 "))
	assert.Equal(t, "", NormalizeNIK("   "))
}

func TestNormalizeCSV(t *testing.T) {
	assert.Equal(t, "a,b", NormalizeCSV("b, a ,a,"))
	assert.Equal(t, "", NormalizeCSV(""))
	assert.Equal(t, "", NormalizeCSV(" , ,"))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"001", "07", "12"}, SplitCSV("12, 07 ,001,07"))
	assert.Nil(t, SplitCSV(""))
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string trim", "  007 ", "007"},
		{"bytes", []byte("C-12"), "C-12"},
		{"int", 42, "42"},
		{"int64", int64(42), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIDRejectsUnsafeTypes(t *testing.T) {
	// Float bisa menghilangkan leading zero / presisi, struct jelas salah.
	_, err := NormalizeID(3.5)
	require.Error(t, err)

	_, err = NormalizeID(struct{}{})
	require.Error(t, err)
}
