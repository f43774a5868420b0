package models

import "time"

// เหตุการณ์เข้า/ออกระบบ — 1 แถวต่อ 1 เหตุการณ์ ไม่มีการจับคู่ login กับ logout
// (แถวหนึ่งจะมี timestamp แค่ฝั่งเดียว อีกฝั่งเป็น null)
type AttendanceLog struct {
	UserID          string     `json:"user_id" gorm:"primaryKey;size:36"`
	ID              string     `json:"id" gorm:"primaryKey;size:20"` // epoch ms ตอนบันทึก
	LoginTimestamp  *time.Time `json:"login_timestamp"`
	LogoutTimestamp *time.Time `json:"logout_timestamp"`
}
