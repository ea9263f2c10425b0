package config

import (
	"fmt"
	"log"
	"os"

	"github.com/yudhapratama/survei-server/models"
	"github.com/yudhapratama/survei-server/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB membuka koneksi PostgreSQL dan migrate tabel.
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Response{},
		&models.Pengguna{},
		&models.ExportJob{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")

	seedAdmin(db)
}

// seedAdmin membuat akun petugas pertama dari env kalau tabel masih kosong,
// supaya instalasi baru bisa langsung login.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return
	}

	var count int64
	if err := db.Model(&models.Pengguna{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hash, err := utils.HashPassword(pass)
	if err != nil {
		log.Printf("gagal hash sandi admin: %v", err)
		return
	}
	admin := models.Pengguna{Nama: "Petugas", Email: email, Sandi: hash}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("gagal membuat akun admin: %v", err)
		return
	}
	log.Printf("Akun petugas awal dibuat: %s", email)
}
