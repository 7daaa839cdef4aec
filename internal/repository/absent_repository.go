package repository

import (
	"fmt"
	"strings"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
)

type AbsentRepository interface {
	// GetByDate memuat catatan harian admin (izin/cuti/sakit) satu tanggal.
	GetByDate(date string) ([]model.Absent, error)
	// GetTappingByDate memuat koreksi per sisi (tbl_absent_hourly).
	GetTappingByDate(date string) ([]model.TappingNote, error)
}

type absentRepository struct {
	db *gorm.DB
}

func NewAbsentRepository(db *gorm.DB) AbsentRepository {
	return &absentRepository{db}
}

func (r *absentRepository) GetByDate(date string) ([]model.Absent, error) {
	var rows []map[string]interface{}
	err := r.db.Raw("SELECT nik, status, notes FROM tbl_absent WHERE `date` = ?", date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract absent: %w", err)
	}

	var absents []model.Absent
	for _, row := range rows {
		nik := utils.NormalizeNIK(colString(row["nik"]))
		if nik == "" {
			continue
		}
		absents = append(absents, model.Absent{
			NIK:     nik,
			Tanggal: date,
			Status:  colString(row["status"]),
			Notes:   colString(row["notes"]),
		})
	}
	return absents, nil
}

func (r *absentRepository) GetTappingByDate(date string) ([]model.TappingNote, error) {
	var rows []map[string]interface{}
	err := r.db.Raw("SELECT nik, `hour`, tm, status, notes FROM tbl_absent_hourly WHERE `date` = ?", date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract tapping note: %w", err)
	}

	var notes []model.TappingNote
	for _, row := range rows {
		nik := utils.NormalizeNIK(colString(row["nik"]))
		if nik == "" {
			continue
		}
		notes = append(notes, model.TappingNote{
			NIK:     nik,
			Tanggal: date,
			Jam:     strings.ToLower(colString(row["hour"])),
			Tm:      colStringPtr(row["tm"]),
			Status:  colStringPtr(row["status"]),
			Notes:   colStringPtr(row["notes"]),
		})
	}
	return notes, nil
}
