package cache

import (
	"strings"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

// AddDevice mendaftarkan satu mesin absensi. UnitID berupa daftar koma
// dipecah menjadi satu binding per unit.
func (s *Snapshot) AddDevice(d model.Device) {
	deviceID := strings.TrimSpace(d.DeviceID)
	if deviceID == "" {
		return
	}
	for _, unitID := range utils.SplitCSV(d.UnitID) {
		if s.deviceByUnit[unitID] == nil {
			s.deviceByUnit[unitID] = map[string]string{}
		}
		s.deviceByUnit[unitID][deviceID] = d.Desc
	}
}

// DeviceDesc mengembalikan deskripsi mesin untuk unit tersebut, nil kalau
// mesin tidak terdaftar di unit itu. Lookup murni string.
func (s *Snapshot) DeviceDesc(unitID, deviceID string) *string {
	unitID = strings.TrimSpace(unitID)
	deviceID = strings.TrimSpace(deviceID)
	if unitID == "" || deviceID == "" {
		return nil
	}
	if desc, ok := s.deviceByUnit[unitID][deviceID]; ok {
		return &desc
	}
	return nil
}

// BuildLokasiKerja membentuk source of truth lokasi kerja pegawai:
// semua device_id milik unit + device_id dari kolom lokasi_kerja history,
// dedup dan diurutkan jadi satu string koma. Nil kalau dua-duanya kosong.
func (s *Snapshot) BuildLokasiKerja(unitID, histLokasi string) *string {
	seen := map[string]bool{}
	var ids []string

	unitID = strings.TrimSpace(unitID)
	for id := range s.deviceByUnit[unitID] {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, id := range utils.SplitCSV(histLokasi) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil
	}
	csv := utils.NormalizeCSV(strings.Join(ids, ","))
	return &csv
}

// IsDeviceValid mengecek keanggotaan device_id di string lokasi kerja.
// Salah satu kosong berarti tidak valid.
func IsDeviceValid(deviceID string, lokasiKerja *string) bool {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || lokasiKerja == nil || strings.TrimSpace(*lokasiKerja) == "" {
		return false
	}
	for _, allowed := range utils.SplitCSV(*lokasiKerja) {
		if deviceID == allowed {
			return true
		}
	}
	return false
}
