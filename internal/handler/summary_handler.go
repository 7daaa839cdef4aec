package handler

import (
	"absensi-etl/internal/repository"
	"absensi-etl/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SummaryHandler struct {
	repo repository.SummaryRepository
}

func NewSummaryHandler(repo repository.SummaryRepository) *SummaryHandler {
	return &SummaryHandler{repo: repo}
}

// List mengembalikan baris summary satu tanggal, opsional difilter nik.
func (h *SummaryHandler) List(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := utils.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.repo.GetByDate(date, c.Query("nik"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data summary"})
	}

	return c.JSON(fiber.Map{
		"tanggal": date,
		"total":   len(list),
		"data":    list,
	})
}
