// Package etl mengorkestrasi satu batch harian: extract ke snapshot,
// transform paralel per pegawai, lalu load ke absensi_summaries.
package etl

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"absensi-etl/internal/cache"
	"absensi-etl/internal/engine"
	"absensi-etl/internal/model"
	"absensi-etl/internal/repository"
	"absensi-etl/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Repos adalah semua kolaborator eksternal yang dibutuhkan satu run.
type Repos struct {
	Attendance repository.AttendanceRepository
	Pegawai    repository.PegawaiRepository
	Device     repository.DeviceRepository
	Absent     repository.AbsentRepository
	Jadwal     repository.JadwalRepository
	Summary    repository.SummaryRepository
}

// Options adalah filter opsional satu run (meniru argumen CLI lama).
type Options struct {
	UnitID    string
	SubUnitID string
	NIK       string
	DryRun    bool
}

// Result adalah ringkasan satu tanggal proses.
type Result struct {
	Tanggal   string                   `json:"tanggal"`
	Rows      int                      `json:"rows"`
	Skipped   int                      `json:"skipped"`
	Conflicts int                      `json:"conflicts"`
	Faults    int                      `json:"faults"`
	DryRun    bool                     `json:"dry_run"`
	Durations map[string]time.Duration `json:"durations"`
}

type Runner struct {
	repos     Repos
	log       *logrus.Logger
	workers   int
	batchSize int
}

func NewRunner(repos Repos, log *logrus.Logger, workers, batchSize int) *Runner {
	if workers <= 0 {
		workers = 8
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Runner{repos: repos, log: log, workers: workers, batchSize: batchSize}
}

// RunRange menjalankan ETL untuk rentang tanggal inklusif. Snapshot
// dibuang setiap ganti tanggal; tidak ada state yang menyeberang.
func (r *Runner) RunRange(ctx context.Context, from, to time.Time, opt Options) ([]*Result, error) {
	var results []*Result
	for _, d := range utils.DateRange(from, to) {
		res, err := r.RunDate(ctx, d, opt)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunDate menjalankan satu batch untuk satu tanggal: extract -> snapshot
// beku -> transform paralel -> load transaksional. Batch bersifat atomik
// dari sisi pemanggil: load gagal berarti tidak ada baris yang tersimpan,
// dan run ulang dari snapshot identik menghasilkan baris identik.
func (r *Runner) RunDate(ctx context.Context, date time.Time, opt Options) (*Result, error) {
	tanggal := date.Format(utils.DateLayout)
	res := &Result{Tanggal: tanggal, DryRun: opt.DryRun, Durations: map[string]time.Duration{}}

	r.log.WithField("tanggal", tanggal).Info("ETL start")

	// -------------------------------------------------
	// EXTRACT
	// -------------------------------------------------
	var snap *cache.Snapshot
	err := r.timed(res, "extract", func() error {
		var err error
		snap, err = r.buildSnapshot(ctx, date, opt)
		return err
	})
	if err != nil {
		return nil, err
	}

	res.Faults = snap.FaultCount()
	res.Conflicts = len(snap.Conflicts())
	for nik, n := range snap.Conflicts() {
		r.log.WithFields(logrus.Fields{"nik": nik, "jumlah_history": n + 1}).
			Warn("history aktif ganda, record pertama yang dipakai")
	}

	// -------------------------------------------------
	// TRANSFORM
	// -------------------------------------------------
	var rows []model.AbsensiSummary
	err = r.timed(res, "transform", func() error {
		var err error
		rows, res.Skipped, err = r.transform(ctx, snap, opt)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.Rows = len(rows)

	// -------------------------------------------------
	// LOAD
	// -------------------------------------------------
	if opt.DryRun {
		r.log.WithField("tanggal", tanggal).Info("dry-run, load dilewati")
	} else {
		err = r.timed(res, "load", func() error {
			return r.repos.Summary.Load(rows, r.batchSize)
		})
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", tanggal, err)
		}
	}

	r.log.WithFields(logrus.Fields{
		"tanggal":   tanggal,
		"rows":      res.Rows,
		"skipped":   res.Skipped,
		"extract":   res.Durations["extract"],
		"transform": res.Durations["transform"],
		"load":      res.Durations["load"],
	}).Info("ETL done")

	return res, nil
}

// buildSnapshot menjalankan semua extract lalu membekukan hasilnya.
// Extract boleh paralel karena tiap sumber independen; pengisian snapshot
// tetap sekuensial supaya map-nya tidak pernah ditulis bersamaan.
func (r *Runner) buildSnapshot(ctx context.Context, date time.Time, opt Options) (*cache.Snapshot, error) {
	tanggal := date.Format(utils.DateLayout)

	var (
		taps          []model.TapEvent
		faults        []model.TapFault
		ctxs          []model.PegawaiContext
		devices       []model.Device
		absents       []model.Absent
		notes         []model.TappingNote
		jadwalPegawai []model.JadwalPegawai
		jadwalSubUnit []model.JadwalOrg
		jadwalUnit    []model.JadwalOrg
		jadwalDinas   []model.JadwalOrg
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		taps, faults, err = r.repos.Attendance.GetByDate(tanggal)
		return err
	})
	eg.Go(func() error {
		var err error
		ctxs, err = r.repos.Pegawai.GetActiveByDate(tanggal, opt.UnitID, opt.SubUnitID)
		return err
	})
	eg.Go(func() error {
		var err error
		devices, err = r.repos.Device.GetAll()
		return err
	})
	eg.Go(func() error {
		var err error
		if absents, err = r.repos.Absent.GetByDate(tanggal); err != nil {
			return err
		}
		notes, err = r.repos.Absent.GetTappingByDate(tanggal)
		return err
	})
	eg.Go(func() error {
		var err error
		if jadwalPegawai, err = r.repos.Jadwal.GetJadwalPegawai(tanggal); err != nil {
			return err
		}
		if jadwalSubUnit, err = r.repos.Jadwal.GetJadwalSubUnit(tanggal); err != nil {
			return err
		}
		if jadwalUnit, err = r.repos.Jadwal.GetJadwalUnit(tanggal); err != nil {
			return err
		}
		jadwalDinas, err = r.repos.Jadwal.GetJadwalDinas(tanggal)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("extract %s: %w", tanggal, err)
	}

	snap := cache.NewSnapshot(date)
	for _, t := range taps {
		snap.AddTap(t)
	}
	for _, f := range faults {
		snap.AddFault(f.NIK, f.Err)
	}
	for _, c := range ctxs {
		snap.AddPegawaiCtx(c)
	}
	for _, d := range devices {
		snap.AddDevice(d)
	}
	for _, a := range absents {
		snap.AddAbsent(a)
	}
	for _, n := range notes {
		snap.AddTappingNote(n)
	}
	for _, j := range jadwalPegawai {
		snap.AddJadwalPegawai(j)
	}
	for _, j := range jadwalSubUnit {
		snap.AddJadwalSubUnit(j)
	}
	for _, j := range jadwalUnit {
		snap.AddJadwalUnit(j)
	}
	for _, j := range jadwalDinas {
		snap.AddJadwalDinas(j)
	}

	r.log.WithFields(logrus.Fields{
		"tanggal": tanggal,
		"tapping": len(taps),
		"pegawai": len(ctxs),
		"device":  len(devices),
		"absent":  len(absents),
		"koreksi": len(notes),
	}).Info("snapshot dibangun")

	return snap, nil
}

// transform menjalankan ProcessPegawai lintas worker pool terbatas.
// Hasil ditulis ke slot per-index supaya urutan output deterministik.
func (r *Runner) transform(ctx context.Context, snap *cache.Snapshot, opt Options) ([]model.AbsensiSummary, int, error) {
	niks := snap.NIKs()
	sort.Strings(niks)

	filterNIK := utils.NormalizeNIK(opt.NIK)

	slots := make([]*model.AbsensiSummary, len(niks))
	var mu sync.Mutex
	skipped := 0

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i, nik := range niks {
		// Cancel berarti berhenti menjadwalkan unit baru; yang sudah
		// jalan dibiarkan selesai.
		if egCtx.Err() != nil {
			break
		}

		if filterNIK != "" && nik != filterNIK {
			continue
		}
		if opt.UnitID != "" {
			pctx, ok := snap.PegawaiCtx(nik)
			if !ok || pctx.UnitID != opt.UnitID {
				continue
			}
		}

		i, nik := i, nik
		eg.Go(func() error {
			row, err := engine.ProcessPegawai(snap, nik)
			if err != nil {
				r.log.WithError(err).Warn("pegawai dilewati")
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			slots[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, skipped, err
	}
	if err := ctx.Err(); err != nil {
		return nil, skipped, err
	}

	rows := make([]model.AbsensiSummary, 0, len(slots))
	for _, row := range slots {
		if row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, skipped, nil
}

func (r *Runner) timed(res *Result, label string, fn func() error) error {
	start := time.Now()
	err := fn()
	res.Durations[label] = time.Since(start).Round(time.Millisecond)
	return err
}
