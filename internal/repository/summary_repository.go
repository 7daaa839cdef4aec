package repository

import (
	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Kolom yang boleh ditimpa saat upsert. is_final sengaja tidak pernah
// di-assign dari nilai lama: sekali true tetap true.
var summaryUpdateColumns = []string{
	"time_in", "time_out",
	"time_in_final", "time_out_final",
	"time_in_source", "time_out_source",
	"status_masuk_final", "status_pulang_final", "status_hari_final",
	"jadwal_masuk", "jadwal_pulang", "sumber_jadwal",
	"device_desc_in", "device_id_in",
	"device_desc_out", "device_id_out",
	"filename_in", "filename_out",
	"valid_device_in", "valid_device_out",
	"atribut_masuk", "atribut_pulang",
	"menit_terlambat", "menit_pulang_cepat",
	"anomali", "lokasi_kerja", "final_note",
	"is_final", "updated_at",
}

type SummaryRepository interface {
	// Load meng-upsert seluruh baris satu tanggal dalam satu transaksi:
	// semua masuk atau tidak sama sekali.
	Load(rows []model.AbsensiSummary, batchSize int) error
	GetByDate(date, nik string) ([]model.AbsensiSummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db}
}

func (r *summaryRepository) Load(rows []model.AbsensiSummary, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += batchSize {
			end := start + batchSize
			if end > len(rows) {
				end = len(rows)
			}
			batch := rows[start:end]
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "nik"}, {Name: "tanggal"}},
				DoUpdates: clause.AssignmentColumns(summaryUpdateColumns),
			}).Create(&batch).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *summaryRepository) GetByDate(date, nik string) ([]model.AbsensiSummary, error) {
	var list []model.AbsensiSummary
	query := r.db.Where("tanggal = ?", date).Order("nik asc")
	if nik != "" {
		query = query.Where("nik = ?", utils.NormalizeNIK(nik))
	}
	err := query.Find(&list).Error
	return list, err
}
