package config

import (
	"fmt"

	"absensi-etl/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Databases memegang tiga koneksi yang dipakai ETL:
// Main = database kepegawaian (pegawai_histories, jadwal_*, absensi_summaries),
// Aux  = database pendukung (tbl_device, tbl_absent, tbl_absent_hourly),
// Att  = database mesin absensi (tabel tapping mentah).
type Databases struct {
	Main *gorm.DB
	Aux  *gorm.DB
	Att  *gorm.DB
}

// DSN format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func buildDSN(prefix string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv(prefix+"_USERNAME", "root"),
		GetEnv(prefix+"_PASSWORD", ""),
		GetEnv(prefix+"_HOST", "127.0.0.1"),
		GetEnvAsInt(prefix+"_PORT", 3306),
		GetEnv(prefix+"_DATABASE", ""),
	)
}

func open(prefix string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(buildDSN(prefix)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi database %s: %w", prefix, err)
	}
	return db, nil
}

// ConnectDatabases membuka ketiga koneksi dari environment variables
// (DB_* untuk main, DB_TEMP_* untuk aux, DB_ATT_* untuk att).
func ConnectDatabases() (*Databases, error) {
	main, err := open("DB")
	if err != nil {
		return nil, err
	}

	aux, err := open("DB_TEMP")
	if err != nil {
		return nil, err
	}

	att, err := open("DB_ATT")
	if err != nil {
		return nil, err
	}

	// Auto Migration hanya untuk tabel milik aplikasi ini sendiri.
	// Tabel sumber (pegawai_histories, jadwal_*, tbl_*) dikelola sistem lain.
	if err := main.AutoMigrate(&model.AdminUser{}, &model.AbsensiSummary{}); err != nil {
		return nil, fmt.Errorf("gagal auto migrate: %w", err)
	}

	return &Databases{Main: main, Aux: aux, Att: att}, nil
}
