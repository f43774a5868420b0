package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patiponrmutl/BEGoldTrack/models"
)

// เปิด sqlite in-memory แทน Postgres สำหรับเทสต์ชั้น data access
// DB เป็น global เหมือนตอนรันจริง — เทสต์ในแพ็กเกจนี้เลยไม่ใช้ t.Parallel
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.GoldEntry{},
		&models.AttendanceLog{},
	))
	DB = db
}
