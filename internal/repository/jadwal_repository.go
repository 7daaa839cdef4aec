package repository

import (
	"fmt"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
)

type JadwalRepository interface {
	// Empat tabel jadwal, urut prioritas resolve: pegawai, sub unit, unit,
	// dinas. Tabel level organisasi difilter ke jendela berlakunya.
	GetJadwalPegawai(date string) ([]model.JadwalPegawai, error)
	GetJadwalSubUnit(date string) ([]model.JadwalOrg, error)
	GetJadwalUnit(date string) ([]model.JadwalOrg, error)
	GetJadwalDinas(date string) ([]model.JadwalOrg, error)
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) GetJadwalPegawai(date string) ([]model.JadwalPegawai, error) {
	var rows []map[string]interface{}
	err := r.db.Raw(`
		SELECT nik, jam_masuk, jam_pulang, penalti_in, penalti_out
		FROM jadwal_pegawais
		WHERE date = ?`, date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract jadwal pegawai: %w", err)
	}

	var jadwals []model.JadwalPegawai
	for _, row := range rows {
		jadwals = append(jadwals, model.JadwalPegawai{
			NIK:        utils.NormalizeNIK(colString(row["nik"])),
			Tanggal:    date,
			JamMasuk:   colString(row["jam_masuk"]),
			JamPulang:  colString(row["jam_pulang"]),
			PenaltiIn:  colString(row["penalti_in"]),
			PenaltiOut: colString(row["penalti_out"]),
		})
	}
	return jadwals, nil
}

func (r *jadwalRepository) GetJadwalSubUnit(date string) ([]model.JadwalOrg, error) {
	return r.orgJadwal(date, "jadwal_sub_units", "sub_unit_id")
}

func (r *jadwalRepository) GetJadwalUnit(date string) ([]model.JadwalOrg, error) {
	return r.orgJadwal(date, "jadwal_units", "unit_id")
}

func (r *jadwalRepository) GetJadwalDinas(date string) ([]model.JadwalOrg, error) {
	var rows []map[string]interface{}
	err := r.db.Raw(`
		SELECT hari, jam_masuk, jam_pulang, penalti_in, penalti_out
		FROM jadwal_dinas
		WHERE (start_date IS NULL OR start_date <= ?)
		  AND (end_date IS NULL OR end_date >= ?)`, date, date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract jadwal dinas: %w", err)
	}
	return mapOrgJadwal(rows, "")
}

func (r *jadwalRepository) orgJadwal(date, table, orgColumn string) ([]model.JadwalOrg, error) {
	var rows []map[string]interface{}
	err := r.db.Raw(fmt.Sprintf(`
		SELECT %s, hari, jam_masuk, jam_pulang, penalti_in, penalti_out
		FROM %s
		WHERE (start_date IS NULL OR start_date <= ?)
		  AND (end_date IS NULL OR end_date >= ?)`, orgColumn, table), date, date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", table, err)
	}
	return mapOrgJadwal(rows, orgColumn)
}

func mapOrgJadwal(rows []map[string]interface{}, orgColumn string) ([]model.JadwalOrg, error) {
	var jadwals []model.JadwalOrg
	for _, row := range rows {
		var orgID string
		if orgColumn != "" {
			var err error
			orgID, err = utils.NormalizeID(row[orgColumn])
			if err != nil {
				return nil, fmt.Errorf("jadwal %s: %w", orgColumn, err)
			}
		}
		hari, err := utils.NormalizeID(row["hari"])
		if err != nil {
			return nil, fmt.Errorf("jadwal hari: %w", err)
		}
		jadwals = append(jadwals, model.JadwalOrg{
			OrgID:      orgID,
			Hari:       hari,
			JamMasuk:   colString(row["jam_masuk"]),
			JamPulang:  colString(row["jam_pulang"]),
			PenaltiIn:  colString(row["penalti_in"]),
			PenaltiOut: colString(row["penalti_out"]),
		})
	}
	return jadwals, nil
}
