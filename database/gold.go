package database

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEGoldTrack/models"
	"github.com/patiponrmutl/BEGoldTrack/realtime"
)

// ทุก mutation ของ ledger จะ publish topic "gold:<userID>"
// เพื่อให้ stream ที่เปิดอยู่ดึงชุดข้อมูลเต็มรอบใหม่
func goldTopic(userID string) string { return "gold:" + userID }

// AddGoldEntry บันทึกรายการใหม่ แล้วคืน id ที่ออกให้
func AddGoldEntry(userID string, amount float64, notes string) (string, error) {
	e := models.GoldEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Notes:     notes,
		Timestamp: time.Now(),
	}
	if err := DB.Create(&e).Error; err != nil {
		log.Printf("[gold] add entry for %q failed: %v", userID, err)
		return "", err
	}
	realtime.Default.Publish(goldTopic(userID))
	return e.ID, nil
}

func GetGoldEntry(entryID string) (*models.GoldEntry, error) {
	var e models.GoldEntry
	if err := DB.Where("id = ?", entryID).First(&e).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[gold] get entry %q failed: %v", entryID, err)
		}
		return nil, err
	}
	return &e, nil
}

// UpdateGoldEntry แก้เฉพาะ amount/notes (+updated_at)
// ไม่แตะ owner กับ timestamp เดิมของรายการ
func UpdateGoldEntry(entryID string, amount float64, notes string) error {
	e, err := GetGoldEntry(entryID)
	if err != nil {
		return err
	}
	updates := map[string]any{
		"amount":     amount,
		"notes":      notes,
		"updated_at": time.Now(),
	}
	if err := DB.Model(&models.GoldEntry{}).Where("id = ?", entryID).Updates(updates).Error; err != nil {
		log.Printf("[gold] update entry %q failed: %v", entryID, err)
		return err
	}
	realtime.Default.Publish(goldTopic(e.UserID))
	return nil
}

// DeleteGoldEntry ลบจริง ไม่มี soft delete
func DeleteGoldEntry(entryID string) error {
	e, err := GetGoldEntry(entryID)
	if err != nil {
		return err
	}
	if err := DB.Delete(&models.GoldEntry{}, "id = ?", entryID).Error; err != nil {
		log.Printf("[gold] delete entry %q failed: %v", entryID, err)
		return err
	}
	realtime.Default.Publish(goldTopic(e.UserID))
	return nil
}

// ListGoldEntries คืนรายการของ user เรียงเวลาใหม่สุดก่อน
func ListGoldEntries(userID string) ([]models.GoldEntry, error) {
	var entries []models.GoldEntry
	if err := DB.Where("user_id = ?", userID).Order("timestamp desc").Find(&entries).Error; err != nil {
		log.Printf("[gold] list for %q failed: %v", userID, err)
		return nil, err
	}
	// กัน timestamp ว่างชั่วคราวระหว่าง write ยัง propagate ไม่เสร็จ
	for i := range entries {
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = time.Now()
		}
	}
	return entries, nil
}
