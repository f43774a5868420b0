package models

import "time"

// รายการทอง 1 แถว = จำนวน + โน้ต ของผู้ใช้หนึ่งคน
// Timestamp คือเวลาบันทึกครั้งแรก — update แก้ได้แค่ amount/notes
type GoldEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"index;size:36;not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
