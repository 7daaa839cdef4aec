package main

import (
	"log"

	"absensi-etl/config"
	"absensi-etl/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	dbs, err := config.ConnectDatabases()
	if err != nil {
		log.Fatalf("Gagal koneksi database: %v", err)
	}

	database.SeedAll(dbs.Main)
}
