package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NormalizeNIK merapikan NIK sebelum dipakai sebagai key cache.
func NormalizeNIK(nik string) string {
	return strings.TrimSpace(nik)
}

// NormalizeCSV merapikan string "a, b ,a," menjadi csv terurut tanpa duplikat.
// Kosong mengembalikan "".
func NormalizeCSV(value string) string {
	parts := SplitCSV(value)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ",")
}

// SplitCSV memecah daftar koma menjadi token ter-trim, dedup, terurut.
func SplitCSV(value string) []string {
	seen := map[string]bool{}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		parts = append(parts, p)
	}
	sort.Strings(parts)
	return parts
}

// NormalizeID menormalkan nilai identitas (device_id, unit_id) hasil scan
// database menjadi string ter-trim. ID selalu dibandingkan sebagai string,
// tidak pernah sebagai angka, supaya "007" tidak berubah jadi "7".
// Tipe yang tidak bisa dinormalisasi dengan aman (float, struct, dst.)
// dianggap programmer error dan dikembalikan sebagai error.
func NormalizeID(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case []byte:
		return strings.TrimSpace(string(v)), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	default:
		return "", fmt.Errorf("id bertipe %T tidak bisa dinormalisasi ke string", value)
	}
}
