package database

import (
	"log"
	"strconv"

	"absensi-etl/config"
	"absensi-etl/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi data minimum untuk development: satu akun admin dan
// jadwal dinas default Senin-Jumat. Tabel sumber lain (pegawai, device,
// tapping) milik sistem eksternal dan tidak di-seed dari sini.
func SeedAll(db *gorm.DB) {
	// 1. Akun admin pertama
	password := config.GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Gagal hash password admin: %v", err)
	}

	admin := model.AdminUser{
		Nama:     "Administrator",
		Username: config.GetEnv("SEED_ADMIN_USERNAME", "admin"),
		Password: string(hashed),
		IsActive: true,
	}
	db.Where(model.AdminUser{Username: admin.Username}).
		Attrs(model.AdminUser{Nama: admin.Nama, Password: admin.Password, IsActive: true}).
		FirstOrCreate(&admin)

	// 2. Jadwal dinas default (hari kerja, jam kantor standar)
	type jadwalDinasRow struct {
		Hari       string `gorm:"column:hari"`
		JamMasuk   string `gorm:"column:jam_masuk"`
		JamPulang  string `gorm:"column:jam_pulang"`
		PenaltiIn  string `gorm:"column:penalti_in"`
		PenaltiOut string `gorm:"column:penalti_out"`
	}
	for hari := 1; hari <= 5; hari++ {
		row := jadwalDinasRow{
			Hari:      strconv.Itoa(hari),
			JamMasuk:  "07:30",
			JamPulang: "16:00",
		}
		db.Table("jadwal_dinas").
			Where("hari = ?", row.Hari).
			FirstOrCreate(&row)
	}

	log.Println("Seeding selesai")
}
