package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/config"
	"github.com/patiponrmutl/BEGoldTrack/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError เพื่อให้ unique violation ออกมาเป็น gorm.ErrDuplicatedKey
	// (ใช้ตรวจ slug ชนกันตอน CreateUser)
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.GoldEntry{},
		&models.AttendanceLog{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
