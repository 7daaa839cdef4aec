package routes

import (
	"absensi-etl/config"
	"absensi-etl/internal/etl"
	"absensi-etl/internal/handler"
	"absensi-etl/internal/middleware"
	"absensi-etl/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, dbs *config.Databases) {
	adminRepo := repository.NewAdminUserRepository(dbs.Main)
	hdl := handler.NewAuthHandler(adminRepo)

	app.Post("/api/auth/login", hdl.Login)
}

func SetupETLRoutes(app *fiber.App, runner *etl.Runner) {
	hdl := handler.NewETLHandler(runner)

	api := app.Group("/api/etl", middleware.Auth)
	api.Post("/run", hdl.Run)
}

func SetupSummaryRoutes(app *fiber.App, dbs *config.Databases) {
	summaryRepo := repository.NewSummaryRepository(dbs.Main)
	summaryHdl := handler.NewSummaryHandler(summaryRepo)
	reportHdl := handler.NewReportHandler(summaryRepo)

	api := app.Group("/api", middleware.Auth)
	api.Get("/summary", summaryHdl.List)
	api.Get("/report/harian", reportHdl.Harian)
}
