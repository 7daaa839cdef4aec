package repository

import (
	"strconv"
	"strings"
	"time"
)

// Hasil extract discan sebagai map (meniru dict cursor), karena tipe kolom
// di database sumber tidak seragam: id bisa INT atau VARCHAR, hari bisa
// angka atau nama. Normalisasi id yang ketat ada di utils.NormalizeID;
// colString di sini hanya untuk kolom non-identitas (jam, keterangan).
func colString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format("15:04:05")
	default:
		return ""
	}
}

func colStringPtr(v interface{}) *string {
	s := colString(v)
	if s == "" {
		return nil
	}
	return &s
}
