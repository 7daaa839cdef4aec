package repository

import (
	"fmt"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
)

type PegawaiRepository interface {
	// GetActiveByDate memuat history pegawai yang aktif pada tanggal itu.
	// Urutan query deterministik (begin_date terbaru dulu) supaya aturan
	// first-wins di snapshot tidak tergantung urutan kebetulan.
	GetActiveByDate(date, unitID, subUnitID string) ([]model.PegawaiContext, error)
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) GetActiveByDate(date, unitID, subUnitID string) ([]model.PegawaiContext, error) {
	sql := `
		SELECT mp.nik, ph.id_unit, ph.id_sub_unit, ph.lokasi_kerja
		FROM pegawai_histories ph
		JOIN master_pegawais mp ON mp.id = ph.master_pegawai_id
		WHERE ph.begin_date <= ?
		  AND (ph.end_date IS NULL OR ph.end_date >= ?)`
	params := []interface{}{date, date}

	if unitID != "" {
		sql += " AND ph.id_unit = ?"
		params = append(params, unitID)
	}
	if subUnitID != "" {
		sql += " AND ph.id_sub_unit = ?"
		params = append(params, subUnitID)
	}
	sql += " ORDER BY ph.begin_date DESC, ph.id ASC"

	var rows []map[string]interface{}
	if err := r.db.Raw(sql, params...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("extract pegawai: %w", err)
	}

	var ctxs []model.PegawaiContext
	for _, row := range rows {
		unit, err := utils.NormalizeID(row["id_unit"])
		if err != nil {
			return nil, fmt.Errorf("extract pegawai: %w", err)
		}
		subUnit, err := utils.NormalizeID(row["id_sub_unit"])
		if err != nil {
			return nil, fmt.Errorf("extract pegawai: %w", err)
		}
		ctxs = append(ctxs, model.PegawaiContext{
			NIK:         utils.NormalizeNIK(colString(row["nik"])),
			UnitID:      unit,
			SubUnitID:   subUnit,
			LokasiKerja: colString(row["lokasi_kerja"]),
		})
	}
	return ctxs, nil
}
