package utils

import (
	"strconv"
	"strings"
)

// ToMinutes mengubah nilai jam dari database menjadi menit sejak tengah
// malam. Menerima "HH:MM", "HH:MM:SS", datetime dengan tanggal di depan,
// atau angka polos yang sudah dalam satuan menit. Nilai yang tidak bisa
// diparse mengembalikan ok=false, bukan error: rule engine menurunkannya
// ke nol menit.
func ToMinutes(value string) (int, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, false
	}

	// "2024-05-01 07:55:00" -> ambil bagian jamnya saja
	if i := strings.LastIndex(v, " "); i >= 0 {
		v = v[i+1:]
	}

	if !strings.Contains(v, ":") {
		// durasi polos dalam menit
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n, true
		}
		return 0, false
	}

	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}

// FlatPenalty memaksa nilai penalti jadwal menjadi integer menit.
// Gagal parse berarti 0, bukan error.
func FlatPenalty(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}
