// Package engine berisi logika murni rekonsiliasi absensi harian:
// klasifikasi tapping, resolusi waktu/perangkat, dan rule engine status.
// Tidak ada akses database di package ini.
package engine

import (
	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

// ClassifyTaps memilah tapping mentah satu hari menjadi kandidat masuk dan
// pulang relatif terhadap jadwal:
//   - tapping yang STRICT lebih awal dari jam masuk adalah kandidat masuk,
//     diambil yang paling awal;
//   - tapping yang STRICT lebih akhir dari jam pulang adalah kandidat
//     pulang, diambil yang paling akhir;
//   - tapping di antara dua batas tidak diklasifikasi ke sisi manapun.
//
// Jam masuk/pulang yang tidak ada (atau tidak bisa diparse) mematikan
// klasifikasi sisi itu saja. Tapping dengan jam tak terbaca dilewati.
func ClassifyTaps(taps []model.TapEvent, jamMasuk, jamPulang *string) (rawIn, rawOut *model.TapEvent) {
	masukMin, masukOK := boundaryMinutes(jamMasuk)
	pulangMin, pulangOK := boundaryMinutes(jamPulang)

	var inMin, outMin int
	for i := range taps {
		tapMin, ok := utils.ToMinutes(taps[i].Time)
		if !ok {
			continue
		}
		if masukOK && tapMin < masukMin {
			if rawIn == nil || tapMin < inMin {
				rawIn = &taps[i]
				inMin = tapMin
			}
		}
		if pulangOK && tapMin > pulangMin {
			if rawOut == nil || tapMin > outMin {
				rawOut = &taps[i]
				outMin = tapMin
			}
		}
	}
	return rawIn, rawOut
}

func boundaryMinutes(jam *string) (int, bool) {
	if jam == nil {
		return 0, false
	}
	return utils.ToMinutes(*jam)
}
