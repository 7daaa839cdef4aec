package handler

import (
	"absensi-etl/internal/etl"
	"absensi-etl/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ETLHandler struct {
	runner *etl.Runner
}

func NewETLHandler(runner *etl.Runner) *ETLHandler {
	return &ETLHandler{runner: runner}
}

type RunRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	UnitID    string `json:"unit_id"`
	SubUnitID string `json:"sub_unit_id"`
	NIK       string `json:"nik"`
	DryRun    bool   `json:"dry_run"`
}

// Run menjalankan ETL secara sinkron untuk satu rentang tanggal.
func (h *ETLHandler) Run(c *fiber.Ctx) error {
	var req RunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	from, err := utils.ParseDate(req.From)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	to := from
	if req.To != "" {
		if to, err = utils.ParseDate(req.To); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal to sebelum from"})
	}

	results, err := h.runner.RunRange(c.Context(), from, to, etl.Options{
		UnitID:    req.UnitID,
		SubUnitID: req.SubUnitID,
		NIK:       req.NIK,
		DryRun:    req.DryRun,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"results": results, // tanggal yang sempat selesai sebelum gagal
		})
	}

	return c.JSON(fiber.Map{
		"message": "ETL selesai",
		"results": results,
	})
}
