// Package cache menyimpan snapshot in-memory per tanggal proses.
// Snapshot dibangun sekali dari hasil extract, lalu dibaca read-only oleh
// engine selama satu batch; tidak ada state yang hidup lintas tanggal.
package cache

import (
	"time"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"
)

type jadwalKey struct {
	orgID string
	hari  string
}

// Snapshot adalah seluruh data satu tanggal proses. Setelah fase build
// selesai, pemakaian bersifat read-only sehingga aman dibaca paralel.
type Snapshot struct {
	date    time.Time
	tanggal string

	pegawai   map[string]model.PegawaiContext
	conflicts map[string]int // nik -> jumlah history aktif ganda yang diabaikan

	deviceByUnit map[string]map[string]string // unit_id -> device_id -> desc

	taps   map[string][]model.TapEvent  // nik -> tapping mentah, urut waktu
	absent map[string]model.Absent      // nik -> catatan harian
	notes  map[string]model.TappingNote // nik|sisi -> koreksi admin
	faults map[string]error             // nik -> fault normalisasi

	jadwalPegawai map[string]model.JadwalPegawai
	jadwalSubUnit map[jadwalKey]model.JadwalOrg
	jadwalUnit    map[jadwalKey]model.JadwalOrg
	jadwalDinas   map[string]model.JadwalOrg
}

func NewSnapshot(date time.Time) *Snapshot {
	return &Snapshot{
		date:          date,
		tanggal:       date.Format(utils.DateLayout),
		pegawai:       map[string]model.PegawaiContext{},
		conflicts:     map[string]int{},
		deviceByUnit:  map[string]map[string]string{},
		taps:          map[string][]model.TapEvent{},
		absent:        map[string]model.Absent{},
		notes:         map[string]model.TappingNote{},
		faults:        map[string]error{},
		jadwalPegawai: map[string]model.JadwalPegawai{},
		jadwalSubUnit: map[jadwalKey]model.JadwalOrg{},
		jadwalUnit:    map[jadwalKey]model.JadwalOrg{},
		jadwalDinas:   map[string]model.JadwalOrg{},
	}
}

// Tanggal mengembalikan tanggal proses snapshot (YYYY-MM-DD).
func (s *Snapshot) Tanggal() string {
	return s.tanggal
}

// =====================================================
// PEGAWAI CONTEXT
// =====================================================

// AddPegawaiCtx mendaftarkan history aktif pegawai. History pertama yang
// masuk menang; duplikat dihitung sebagai konflik supaya bisa dilaporkan,
// bukan diabaikan diam-diam.
func (s *Snapshot) AddPegawaiCtx(ctx model.PegawaiContext) {
	nik := utils.NormalizeNIK(ctx.NIK)
	if nik == "" {
		return
	}
	if _, ok := s.pegawai[nik]; ok {
		s.conflicts[nik]++
		return
	}
	ctx.NIK = nik
	ctx.LokasiKerja = utils.NormalizeCSV(ctx.LokasiKerja)
	s.pegawai[nik] = ctx
}

// PegawaiCtx mengembalikan context aktif pegawai, ok=false kalau tidak ada
// history aktif pada tanggal ini.
func (s *Snapshot) PegawaiCtx(nik string) (model.PegawaiContext, bool) {
	ctx, ok := s.pegawai[utils.NormalizeNIK(nik)]
	return ctx, ok
}

// Conflicts mengembalikan nik yang punya lebih dari satu history aktif.
func (s *Snapshot) Conflicts() map[string]int {
	return s.conflicts
}

// =====================================================
// TAPPING MENTAH / ABSENT / KOREKSI
// =====================================================

func (s *Snapshot) AddTap(tap model.TapEvent) {
	nik := utils.NormalizeNIK(tap.NIK)
	if nik == "" {
		return
	}
	tap.NIK = nik
	s.taps[nik] = append(s.taps[nik], tap)
}

func (s *Snapshot) Taps(nik string) []model.TapEvent {
	return s.taps[utils.NormalizeNIK(nik)]
}

func (s *Snapshot) AddAbsent(a model.Absent) {
	nik := utils.NormalizeNIK(a.NIK)
	if nik == "" {
		return
	}
	a.NIK = nik
	s.absent[nik] = a
}

func (s *Snapshot) Absent(nik string) *model.Absent {
	if a, ok := s.absent[utils.NormalizeNIK(nik)]; ok {
		return &a
	}
	return nil
}

func (s *Snapshot) AddTappingNote(n model.TappingNote) {
	nik := utils.NormalizeNIK(n.NIK)
	if nik == "" || (n.Jam != model.SideIn && n.Jam != model.SideOut) {
		return
	}
	n.NIK = nik
	s.notes[nik+"|"+n.Jam] = n
}

func (s *Snapshot) TappingNote(nik, sisi string) *model.TappingNote {
	if n, ok := s.notes[utils.NormalizeNIK(nik)+"|"+sisi]; ok {
		return &n
	}
	return nil
}

// AddFault mencatat error normalisasi untuk satu pegawai. Fault pertama
// yang menang; fault berikutnya untuk nik yang sama tidak menimpa.
func (s *Snapshot) AddFault(nik string, err error) {
	nik = utils.NormalizeNIK(nik)
	if nik == "" || err == nil {
		return
	}
	if _, ok := s.faults[nik]; !ok {
		s.faults[nik] = err
	}
}

// Fault mengembalikan error normalisasi pegawai, nil kalau bersih.
func (s *Snapshot) Fault(nik string) error {
	return s.faults[utils.NormalizeNIK(nik)]
}

// FaultCount mengembalikan jumlah pegawai yang gugur karena fault.
func (s *Snapshot) FaultCount() int {
	return len(s.faults)
}

// NIKs mengembalikan gabungan semua nik yang dikenal snapshot: punya
// history aktif, punya tapping, atau punya fault.
func (s *Snapshot) NIKs() []string {
	seen := map[string]bool{}
	var niks []string
	add := func(nik string) {
		if !seen[nik] {
			seen[nik] = true
			niks = append(niks, nik)
		}
	}
	for nik := range s.pegawai {
		add(nik)
	}
	for nik := range s.taps {
		add(nik)
	}
	for nik := range s.faults {
		add(nik)
	}
	return niks
}
