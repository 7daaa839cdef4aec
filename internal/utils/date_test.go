package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("06-05-2024")
	require.Error(t, err)
}

func TestHariInt(t *testing.T) {
	// 2024-05-06 = senin, 2024-05-12 = minggu
	senin := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	minggu := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, HariInt(senin))
	assert.Equal(t, 7, HariInt(minggu))
}

func TestHariString(t *testing.T) {
	jumat := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "jumat", HariString(jumat))
	assert.Equal(t, "senin", HariString(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)))
}

func TestDateRange(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	got := DateRange(from, to)
	require.Len(t, got, 3)
	assert.Equal(t, from, got[0])
	assert.Equal(t, to, got[2])

	// Satu hari saja kalau from == to.
	assert.Len(t, DateRange(from, from), 1)
	// Kosong kalau terbalik.
	assert.Empty(t, DateRange(to, from))
}
