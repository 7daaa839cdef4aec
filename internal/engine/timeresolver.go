package engine

import (
	"strings"

	"absensi-etl/internal/model"
)

// ResolveTime menentukan waktu final satu sisi:
//  1. Ada koreksi admin -> jam koreksi, atau jam tapping mesin kalau
//     koreksinya tanpa jam -> sumber ADMIN.
//  2. Ada tapping mesin -> jam tapping -> sumber MESIN.
//  3. Tidak ada apa-apa -> nil, sumber AUTO.
func ResolveTime(note *model.TappingNote, raw *model.TapEvent) (*string, string) {
	if note != nil {
		if note.Tm != nil && strings.TrimSpace(*note.Tm) != "" {
			return note.Tm, model.SourceAdmin
		}
		if raw != nil {
			t := raw.Time
			return &t, model.SourceAdmin
		}
		return nil, model.SourceAdmin
	}

	if raw != nil {
		t := raw.Time
		return &t, model.SourceMesin
	}

	return nil, model.SourceAuto
}
