package cache

import (
	"strconv"
	"strings"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

func normalizeHari(hari string) string {
	return strings.ToLower(strings.TrimSpace(hari))
}

func (s *Snapshot) AddJadwalPegawai(j model.JadwalPegawai) {
	nik := utils.NormalizeNIK(j.NIK)
	if nik == "" {
		return
	}
	j.NIK = nik
	s.jadwalPegawai[nik] = j
}

func (s *Snapshot) AddJadwalSubUnit(j model.JadwalOrg) {
	orgID := strings.TrimSpace(j.OrgID)
	if orgID == "" {
		return
	}
	s.jadwalSubUnit[jadwalKey{orgID, normalizeHari(j.Hari)}] = j
}

func (s *Snapshot) AddJadwalUnit(j model.JadwalOrg) {
	orgID := strings.TrimSpace(j.OrgID)
	if orgID == "" {
		return
	}
	s.jadwalUnit[jadwalKey{orgID, normalizeHari(j.Hari)}] = j
}

func (s *Snapshot) AddJadwalDinas(j model.JadwalOrg) {
	s.jadwalDinas[normalizeHari(j.Hari)] = j
}

// jamPtr mengembalikan nil untuk kolom jam yang kosong supaya engine
// tidak menganggap string kosong sebagai jadwal.
func jamPtr(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func orgJadwal(j model.JadwalOrg, sumber string) model.Jadwal {
	return model.Jadwal{
		JamMasuk:   jamPtr(j.JamMasuk),
		JamPulang:  jamPtr(j.JamPulang),
		PenaltiIn:  j.PenaltiIn,
		PenaltiOut: j.PenaltiOut,
		Sumber:     sumber,
	}
}

// lookupHari mencoba key hari sebagai angka (senin=1) dulu, lalu nama hari.
// Dua pengkodean itu sama-sama dipakai di tabel jadwal.
func (s *Snapshot) lookupHari(m map[jadwalKey]model.JadwalOrg, orgID string) (model.JadwalOrg, bool) {
	hi := strconv.Itoa(utils.HariInt(s.date))
	hs := utils.HariString(s.date)
	if j, ok := m[jadwalKey{orgID, hi}]; ok {
		return j, true
	}
	if j, ok := m[jadwalKey{orgID, hs}]; ok {
		return j, true
	}
	return model.JadwalOrg{}, false
}

// ResolveJadwal mencari jadwal final satu pegawai dengan prioritas ketat:
// pegawai > sub unit > unit > dinas. Satu level dipakai utuh (jam masuk,
// jam pulang, penalti sekaligus) atau dilewati sama sekali; tidak ada
// penggabungan antar level.
func (s *Snapshot) ResolveJadwal(nik, unitID, subUnitID string) model.Jadwal {
	// 1. Jadwal pegawai (per nik per tanggal)
	if j, ok := s.jadwalPegawai[utils.NormalizeNIK(nik)]; ok {
		return model.Jadwal{
			JamMasuk:   jamPtr(j.JamMasuk),
			JamPulang:  jamPtr(j.JamPulang),
			PenaltiIn:  j.PenaltiIn,
			PenaltiOut: j.PenaltiOut,
			Sumber:     model.SumberJadwalPegawai,
		}
	}

	// 2. Jadwal sub unit
	if subUnitID = strings.TrimSpace(subUnitID); subUnitID != "" {
		if j, ok := s.lookupHari(s.jadwalSubUnit, subUnitID); ok {
			return orgJadwal(j, model.SumberJadwalSubUnit)
		}
	}

	// 3. Jadwal unit
	if unitID = strings.TrimSpace(unitID); unitID != "" {
		if j, ok := s.lookupHari(s.jadwalUnit, unitID); ok {
			return orgJadwal(j, model.SumberJadwalUnit)
		}
	}

	// 4. Jadwal dinas (default instansi)
	hi := strconv.Itoa(utils.HariInt(s.date))
	if j, ok := s.jadwalDinas[hi]; ok {
		return orgJadwal(j, model.SumberJadwalDinas)
	}
	if j, ok := s.jadwalDinas[utils.HariString(s.date)]; ok {
		return orgJadwal(j, model.SumberJadwalDinas)
	}

	return model.Jadwal{}
}
