package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate memvalidasi tanggal format YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal %q tidak valid (format: YYYY-MM-DD): %w", value, err)
	}
	return d, nil
}

// DateRange mengembalikan semua tanggal dari from sampai to (inklusif).
func DateRange(from, to time.Time) []time.Time {
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

var hariNames = []string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu", "minggu"}

// HariInt mengembalikan hari dalam konvensi database: senin=1 .. minggu=7.
func HariInt(d time.Time) int {
	return (int(d.Weekday())+6)%7 + 1
}

// HariString mengembalikan nama hari huruf kecil sesuai isi tabel jadwal.
func HariString(d time.Time) string {
	return hariNames[HariInt(d)-1]
}
