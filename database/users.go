package database

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/models"
	"github.com/patiponrmutl/BEGoldTrack/slug"
)

// นโยบาย error ของชั้นนี้: log แล้วส่งต่อให้ caller ตามเดิม ไม่ retry
// (caller เป็นคนตัดสินใจเรื่องข้อความที่ผู้ใช้เห็น)

// IsSlugTaken เช็คว่ามี user ใช้ slug นี้แล้วหรือยัง
func IsSlugTaken(s string) (bool, error) {
	var u models.User
	err := DB.Select("slug").Where("slug = ?", s).First(&u).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	log.Printf("[users] check slug %q failed: %v", s, err)
	return false, err
}

// CreateUser provision บัญชีใหม่: hash รหัสผ่าน + หา slug ว่าง + insert
// isAdmin คือจุดเดียวที่ entry point ฝั่ง admin/ฝั่งสมัครเองต่างกัน
// ถ้าแพ้ race ตอน probe slug (duplicate key ตอน insert) จะได้ slug.ErrConflict
func CreateUser(email, password, name string, isAdmin bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[users] hash password failed: %v", err)
		return nil, err
	}

	s, err := slug.GenerateUnique(email, name, IsSlugTaken)
	if err != nil {
		log.Printf("[users] generate slug failed: %v", err)
		return nil, err
	}

	now := time.Now()
	u := models.User{
		Slug:         s,
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, slug.ErrConflict
		}
		log.Printf("[users] create %q failed: %v", s, err)
		return nil, err
	}
	return &u, nil
}

func GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := DB.Order("created_at asc").Find(&users).Error; err != nil {
		log.Printf("[users] list failed: %v", err)
		return nil, err
	}
	return users, nil
}

// GetUserBySlug — not found ไม่ log (เป็นเคสปกติของหน้า /:userSlug)
func GetUserBySlug(s string) (*models.User, error) {
	var u models.User
	if err := DB.Where("slug = ?", s).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[users] get by slug %q failed: %v", s, err)
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByUserID(id string) (*models.User, error) {
	var u models.User
	if err := DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[users] get by id %q failed: %v", id, err)
		}
		return nil, err
	}
	return &u, nil
}

func GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := DB.Where("email = ?", email).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[users] get by email %q failed: %v", email, err)
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUser แก้ field ตามที่ส่งมา + stamp updated_at เสมอ
// slug กับ user_id แก้ไม่ได้ (identity ของ record)
func UpdateUser(s string, updates map[string]any) error {
	delete(updates, "slug")
	delete(updates, "user_id")
	updates["updated_at"] = time.Now()

	tx := DB.Model(&models.User{}).Where("slug = ?", s).Updates(updates)
	if tx.Error != nil {
		log.Printf("[users] update %q failed: %v", s, tx.Error)
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ActivateUser(s string) error   { return setUserActive(s, true) }
func DeactivateUser(s string) error { return setUserActive(s, false) }

func setUserActive(s string, active bool) error {
	return UpdateUser(s, map[string]any{"is_active": active})
}
