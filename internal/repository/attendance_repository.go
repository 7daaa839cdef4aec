package repository

import (
	"fmt"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	// GetByDate memuat tapping mentah satu tanggal, urut nik lalu waktu.
	// Baris dengan device_id yang tidak bisa dinormalisasi dikembalikan
	// sebagai fault, bukan error: satu baris rusak hanya menggugurkan
	// pegawai bersangkutan, bukan seluruh batch.
	GetByDate(date string) ([]model.TapEvent, []model.TapFault, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) GetByDate(date string) ([]model.TapEvent, []model.TapFault, error) {
	var rows []map[string]interface{}
	err := r.db.Raw(`
		SELECT TRIM(nik) AS nik, `+"`time`"+`, device_id, filename, lat, `+"`long`"+`
		FROM tbl_attendance
		WHERE DATE(`+"`date`"+`) = ?
		ORDER BY nik, `+"`time`", date).Scan(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("extract attendance: %w", err)
	}

	var taps []model.TapEvent
	var faults []model.TapFault
	for _, row := range rows {
		nik := utils.NormalizeNIK(colString(row["nik"]))
		if nik == "" {
			continue
		}

		deviceID, err := utils.NormalizeID(row["device_id"])
		if err != nil {
			faults = append(faults, model.TapFault{NIK: nik, Tanggal: date, Err: err})
			continue
		}

		taps = append(taps, model.TapEvent{
			NIK:      nik,
			Tanggal:  date,
			Time:     colString(row["time"]),
			DeviceID: deviceID,
			Filename: colString(row["filename"]),
			Lat:      colString(row["lat"]),
			Long:     colString(row["long"]),
		})
	}
	return taps, faults, nil
}
