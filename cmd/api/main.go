package main

import (
	"absensi-etl/config"
	"absensi-etl/internal/etl"
	"absensi-etl/internal/repository"
	"absensi-etl/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Warn("File .env tidak ditemukan, menggunakan environment variables sistem")
	}

	dbs, err := config.ConnectDatabases()
	if err != nil {
		log.Fatalf("Gagal koneksi database: %v", err)
	}

	runner := etl.NewRunner(etl.Repos{
		Attendance: repository.NewAttendanceRepository(dbs.Att),
		Pegawai:    repository.NewPegawaiRepository(dbs.Main),
		Device:     repository.NewDeviceRepository(dbs.Aux),
		Absent:     repository.NewAbsentRepository(dbs.Aux),
		Jadwal:     repository.NewJadwalRepository(dbs.Main),
		Summary:    repository.NewSummaryRepository(dbs.Main),
	}, log,
		config.GetEnvAsInt("ETL_WORKERS", 8),
		config.GetEnvAsInt("ETL_BATCH_SIZE", 500),
	)

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, dbs)
	routes.SetupETLRoutes(app, runner)
	routes.SetupSummaryRoutes(app, dbs)

	addr := ":" + config.GetEnv("PORT", "3000")
	log.Infof("Server siap di %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server berhenti: %v", err)
	}
}
