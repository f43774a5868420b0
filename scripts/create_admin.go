// scripts/create_admin.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/config"
	"github.com/patiponrmutl/BEGoldTrack/database"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	// โหลด config และเชื่อม DB ตามที่ main.go ใช้จริง
	cfg := config.Load()
	database.Connect(cfg)

	email := getenv("ADMIN_EMAIL", "admin@example.com")
	password := getenv("ADMIN_PASSWORD", "1234")
	name := getenv("ADMIN_NAME", "Admin")

	// ตรวจว่ามีบัญชีนี้อยู่แล้วหรือไม่
	if _, err := database.GetUserByEmail(email); err == nil {
		fmt.Println("⚠️  Admin user already exists with email:", email)
		os.Exit(0)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	// สร้างผ่าน CreateUser เพื่อให้ slug/hashing เดินทางเดียวกับ API จริง
	u, err := database.CreateUser(email, password, name, true)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Println("✅ Admin user created successfully!")
	fmt.Println("   Email:   ", email)
	fmt.Println("   Slug:    ", u.Slug)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
