package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"absensi-etl/config"
	"absensi-etl/internal/etl"
	"absensi-etl/internal/notifier"
	"absensi-etl/internal/repository"
	"absensi-etl/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagFrom      string
	flagTo        string
	flagUnitID    string
	flagSubUnitID string
	flagNIK       string
	flagDryRun    bool
	flagBatchSize int
	flagWorkers   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "absensi-etl",
		Short:        "ETL harian absensi_summaries",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagFrom, "from", "", "tanggal awal (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&flagTo, "to", "", "tanggal akhir, default sama dengan --from")
	rootCmd.Flags().StringVar(&flagUnitID, "unit-id", "", "filter unit")
	rootCmd.Flags().StringVar(&flagSubUnitID, "sub-unit-id", "", "filter sub unit")
	rootCmd.Flags().StringVar(&flagNIK, "nik", "", "filter satu pegawai")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "transform tanpa load")
	rootCmd.Flags().IntVar(&flagBatchSize, "batch-size", 500, "ukuran batch upsert")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 8, "jumlah worker transform")
	_ = rootCmd.MarkFlagRequired("from")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(config.GetEnv("ENV_PATH", ".env")); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem")
	}

	from, err := utils.ParseDate(flagFrom)
	if err != nil {
		return err
	}
	to := from
	if flagTo != "" {
		if to, err = utils.ParseDate(flagTo); err != nil {
			return err
		}
	}
	if to.Before(from) {
		return fmt.Errorf("tanggal --to sebelum --from")
	}

	dbs, err := config.ConnectDatabases()
	if err != nil {
		return err
	}

	runner := etl.NewRunner(etl.Repos{
		Attendance: repository.NewAttendanceRepository(dbs.Att),
		Pegawai:    repository.NewPegawaiRepository(dbs.Main),
		Device:     repository.NewDeviceRepository(dbs.Aux),
		Absent:     repository.NewAbsentRepository(dbs.Aux),
		Jadwal:     repository.NewJadwalRepository(dbs.Main),
		Summary:    repository.NewSummaryRepository(dbs.Main),
	}, log, flagWorkers, flagBatchSize)

	// SIGINT/SIGTERM menghentikan penjadwalan pegawai baru; yang sedang
	// diproses dibiarkan selesai.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := runner.RunRange(ctx, from, to, etl.Options{
		UnitID:    flagUnitID,
		SubUnitID: flagSubUnitID,
		NIK:       flagNIK,
		DryRun:    flagDryRun,
	})

	if mailErr := notifier.NewFromEnv().SendRecap(results); mailErr != nil {
		log.WithError(mailErr).Warn("Gagal mengirim rekap email")
	}

	if err != nil {
		return err
	}

	log.Info("ETL completed successfully")
	return nil
}
