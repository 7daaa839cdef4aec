package repository

import (
	"fmt"

	"absensi-etl/internal/model"
	"absensi-etl/internal/utils"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	// GetAll memuat seluruh mesin absensi. Tabel device kecil dan dipakai
	// semua unit, jadi tidak difilter per tanggal.
	GetAll() ([]model.Device, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

func (r *deviceRepository) GetAll() ([]model.Device, error) {
	var rows []map[string]interface{}
	err := r.db.Raw("SELECT unit_id, device_id, `desc` FROM tbl_device").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("extract devices: %w", err)
	}

	var devices []model.Device
	for _, row := range rows {
		unitID, err := utils.NormalizeID(row["unit_id"])
		if err != nil {
			return nil, fmt.Errorf("extract devices: %w", err)
		}
		deviceID, err := utils.NormalizeID(row["device_id"])
		if err != nil {
			return nil, fmt.Errorf("extract devices: %w", err)
		}
		if unitID == "" || deviceID == "" {
			continue
		}
		devices = append(devices, model.Device{
			UnitID:   unitID,
			DeviceID: deviceID,
			Desc:     colString(row["desc"]),
		})
	}
	return devices, nil
}
