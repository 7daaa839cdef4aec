package handler

import (
	"fmt"

	"absensi-etl/internal/model"
	"absensi-etl/internal/repository"
	"absensi-etl/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	repo repository.SummaryRepository
}

func NewReportHandler(repo repository.SummaryRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

var reportHeader = []interface{}{
	"NIK", "Tanggal", "Status Hari",
	"Jam Masuk", "Sumber", "Atribut Masuk",
	"Jam Pulang", "Sumber", "Atribut Pulang",
	"Menit Terlambat", "Menit Pulang Cepat",
	"Jadwal", "Sumber Jadwal", "Anomali", "Catatan",
}

// Harian mengekspor rekap satu tanggal sebagai file Excel.
func (h *ReportHandler) Harian(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := utils.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.repo.GetByDate(date, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data summary"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}

	for i, row := range list {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.NIK, row.Tanggal, row.StatusHariFinal,
			deref(row.TimeInFinal), row.TimeInSource, deref(row.AtributMasuk),
			deref(row.TimeOutFinal), row.TimeOutSource, deref(row.AtributPulang),
			row.MenitTerlambat, row.MenitPulangCepat,
			jadwalCell(row), deref(row.SumberJadwal), deref(row.Anomali), row.FinalNote,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="rekap-absensi-%s.xlsx"`, date))
	return c.Send(buf.Bytes())
}

func jadwalCell(row model.AbsensiSummary) string {
	if row.JadwalMasuk == nil && row.JadwalPulang == nil {
		return ""
	}
	return fmt.Sprintf("%s - %s", deref(row.JadwalMasuk), deref(row.JadwalPulang))
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
